package cli

import (
	"github.com/spf13/cobra"

	"github.com/hoangtrungvu/musicstream/internal/service"
)

var (
	registerFirstName string
	registerLastName  string
	loginRememberMe   bool
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the local account and session",
}

var authRegisterCmd = &cobra.Command{
	Use:   "register <email> <password>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		user, err := application.Auth.Register(service.RegisterRequest{
			Email:           args[0],
			Password:        args[1],
			ConfirmPassword: args[1],
			FirstName:       registerFirstName,
			LastName:        registerLastName,
		})
		if err != nil {
			return err
		}
		cmd.Printf("registered %s (%s)\n", user.DisplayName(), user.Email)
		return nil
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in to an existing account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		user, err := application.Auth.Login(args[0], args[1], loginRememberMe)
		if err != nil {
			return err
		}
		cmd.Printf("logged in as %s (%s)\n", user.DisplayName(), user.Email)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		if err := application.Auth.Logout(); err != nil {
			return err
		}
		cmd.Println("logged out")
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		user, err := application.Auth.CurrentUser()
		if err != nil {
			return err
		}
		cmd.Printf("%s (%s), joined %s\n", user.DisplayName(), user.Email, user.JoinedAt.Format("2006-01-02"))
		return nil
	},
}

func init() {
	authRegisterCmd.Flags().StringVar(&registerFirstName, "first-name", "", "first name")
	authRegisterCmd.Flags().StringVar(&registerLastName, "last-name", "", "last name")
	authLoginCmd.Flags().BoolVar(&loginRememberMe, "remember-me", false, "persist the session across restarts")
	authCmd.AddCommand(authRegisterCmd, authLoginCmd, authLogoutCmd, authWhoamiCmd)
	rootCmd.AddCommand(authCmd)
}
