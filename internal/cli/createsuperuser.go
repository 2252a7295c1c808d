package cli

import (
	"context"
	"fmt"

	"github.com/blogicum/blogicum/internal/database"
	"github.com/blogicum/blogicum/internal/modules/auth/user"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var superuser user.UserDTO

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create a staff account with full admin access",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := database.Connect(cfg, false)
		if err != nil {
			return err
		}
		defer database.Close(db)

		dto := superuser
		dto.IsStaff = true
		dto.IsSuperuser = true
		u, err := user.NewService(db, cfg.Admin.TokenTTL).Create(context.Background(), &dto)
		if err != nil {
			return fmt.Errorf("create superuser: %w", err)
		}
		logger.Info("superuser created", zap.Uint("id", u.ID), zap.String("username", u.Username))
		return nil
	},
}

func init() {
	f := createSuperuserCmd.Flags()
	f.StringVar(&superuser.Username, "username", "", "Login name")
	f.StringVar(&superuser.Password, "password", "", "Password")
	f.StringVar(&superuser.Name, "name", "", "Display name")
	_ = createSuperuserCmd.MarkFlagRequired("username")
	_ = createSuperuserCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createSuperuserCmd)
}
