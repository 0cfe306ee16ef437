// file: cmd/rules-merge/cmd/session.go
package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"rules-merge/config"
	"rules-merge/internal/logger"
)

// session carries what every command needs once flags are parsed.
type session struct {
	cfg *config.Config
	log *logger.Logger
	fs  afero.Fs
}

func newSession(cmd *cobra.Command, fs afero.Fs) (*session, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(fs, configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg: cfg,
		log: log.With("runID", uuid.New().String(), "command", cmd.Name()),
		fs:  fs,
	}, nil
}

func (s *session) close() {
	// Sync on a terminal stderr fails with EINVAL on some platforms.
	_ = s.log.Sync()
}
