package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	domainAuth "github.com/BruksfildServices01/table-reservations/internal/domain/auth"
	infraRepo "github.com/BruksfildServices01/table-reservations/internal/infra/repository"
	ucAuth "github.com/BruksfildServices01/table-reservations/internal/usecase/auth"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Staff account management",
	}
	cmd.AddCommand(newUserAddCmd())
	return cmd
}

func newUserAddCmd() *cobra.Command {
	var in ucAuth.CreateUserInput

	c := &cobra.Command{
		Use:   "add",
		Short: "Create a staff or owner account for a restaurant",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			u, err := ucAuth.NewCreateUser(infraRepo.NewAuthGormRepository(rt.db)).Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s %q (id %d)\n", u.Role, u.Username, u.ID)
			return nil
		},
	}

	c.Flags().StringVar(&in.RestaurantSlug, "restaurant", "", "restaurant slug")
	c.Flags().StringVar(&in.Username, "username", "", "login name")
	c.Flags().StringVar(&in.Password, "password", "", "password")
	c.Flags().StringVar(&in.Email, "email", "", "email address")
	c.Flags().StringVar(&in.Role, "role", domainAuth.RoleStaff, "owner or staff")
	_ = c.MarkFlagRequired("restaurant")
	_ = c.MarkFlagRequired("username")
	_ = c.MarkFlagRequired("password")
	return c
}
