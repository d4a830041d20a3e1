package cmd

import (
	"fmt"

	"bettero/internal/api"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagLoginUsername string
	flagLoginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the expense API",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account on the expense API",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored tokens",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVarP(&flagLoginUsername, "username", "u", "", "Username (prompted if omitted)")
	loginCmd.Flags().StringVar(&flagLoginPassword, "password", "", "Password (prompted if omitted)")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
}

// promptCredentials fills in whatever the flags did not provide.
func promptCredentials(creds *api.Credentials) error {
	var fields []huh.Field
	if creds.Username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(&creds.Username))
	}
	if creds.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func runLogin(cmd *cobra.Command, _ []string) error {
	creds := api.Credentials{
		Username: flagLoginUsername,
		Password: flagLoginPassword,
	}
	if err := promptCredentials(&creds); err != nil {
		return err
	}

	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.client.Login(cmd.Context(), creds); err != nil {
		return err
	}
	fmt.Printf("  Logged in as %s.\n", creds.Username)
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	var reg api.Registration
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Username").Value(&reg.Username),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&reg.Password),
		huh.NewInput().Title("Email").Value(&reg.Email),
		huh.NewInput().Title("First name").Value(&reg.FirstName),
		huh.NewInput().Title("Last name").Value(&reg.LastName),
	))
	if err := form.Run(); err != nil {
		return err
	}

	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.client.Register(cmd.Context(), reg); err != nil {
		return err
	}
	fmt.Printf("  Registered %s. Log in with `bettero login`.\n", reg.Username)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.client.Logout(cmd.Context()); err != nil {
		fmt.Println("  Server logout failed, but local tokens are cleared.")
		return nil
	}
	fmt.Println("  Logged out.")
	return nil
}
