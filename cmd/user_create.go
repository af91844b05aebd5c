package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ativos.GO/config"
	coreAuth "ativos.GO/core/auth"
	"ativos.GO/model"
	entity "ativos.GO/model/entity"
	userRepo "ativos.GO/model/repository/user"
)

var (
	newUsername string
	newEmail    string
	newName     string
	newRole     string
	newPassword string
)

var userCreateCmd = &cobra.Command{
	Use:   "user:create",
	Short: "Create a user account (for bootstrapping the first admin)",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}
		if err := model.Migrate(db); err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			return
		}

		hash, err := coreAuth.HashPassword(newPassword)
		if err != nil {
			fmt.Printf("Password hashing failed: %v\n", err)
			return
		}
		u := &entity.User{
			Username:     newUsername,
			Email:        newEmail,
			Name:         newName,
			Role:         newRole,
			PasswordHash: hash,
			Active:       true,
		}
		if err := userRepo.NewUserRepository(db).Create(u); err != nil {
			fmt.Printf("User creation failed: %v\n", err)
			return
		}
		fmt.Printf("Created user %s (id=%d, role=%s)\n", u.Username, u.ID, u.Role)
	},
}

func init() {
	userCreateCmd.Flags().StringVarP(&newUsername, "username", "u", "", "Username (required)")
	userCreateCmd.MarkFlagRequired("username")
	userCreateCmd.Flags().StringVarP(&newEmail, "email", "e", "", "Email address (required)")
	userCreateCmd.MarkFlagRequired("email")
	userCreateCmd.Flags().StringVarP(&newName, "name", "n", "", "Display name")
	userCreateCmd.Flags().StringVarP(&newRole, "role", "r", entity.RoleAdmin, "Role: admin, manager, technician or viewer")
	userCreateCmd.Flags().StringVarP(&newPassword, "password", "p", "", "Password (required)")
	userCreateCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(userCreateCmd)
}
