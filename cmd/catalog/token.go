package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/angelmondragon/shopassist-backend/pkg/auth"
	"github.com/angelmondragon/shopassist-backend/pkg/config"
)

func tokenCmd() *cobra.Command {
	var (
		userID string
		email  string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an HS256 access token for the jwt auth provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !strings.EqualFold(cfg.Auth.Provider, config.AuthProviderJWT) {
				return fmt.Errorf("token minting requires %s=%s", config.EnvAuthProvider, config.AuthProviderJWT)
			}
			token, err := auth.MintAccessToken(cfg.JWT, time.Now(), auth.AccessTokenPayload{
				UserID: userID,
				Email:  email,
				JTI:    uuid.NewString(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id placed in the sub claim")
	cmd.Flags().StringVar(&email, "email", "", "optional email claim")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
