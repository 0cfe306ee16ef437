// file: cmd/rules-merge/cmd/root.go
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"rules-merge/internal/merge"
	"rules-merge/internal/metrics"
	"rules-merge/internal/version"
)

// NewRootCommand builds the rules-merge command tree. The root command
// performs the merge; subcommands inspect it.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "rules-merge [flags] <file>...",
		Short: "Merge rules/*.part fragments into a single rules file",
		Long: `rules-merge concatenates rule fragments into one file. A fragment whose first
line starts with "! " belongs to the section named by that line; all fragments
of a section are written together under a single copy of the header.
Header-less fragments are written first, verbatim.

Each fragment name is looked up in --builddir first and in --srcdir otherwise,
so generated fragments override checked-in ones.`,
		Args:    cobra.MinimumNArgs(1),
		Version: version.Version,
		RunE:    runMerge,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	addCommonFlags(root.PersistentFlags())
	root.Flags().String("dest", "", "Output file (default: standard output)")
	root.Flags().String("metrics-file", "", "Write a Prometheus textfile snapshot of the merge to this path")

	root.AddCommand(newPlanCmd())
	return root
}

// addCommonFlags registers the flags shared by every command.
func addCommonFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "Path to a YAML or JSON config file")
	flags.String("srcdir", ".", "Root directory for source-location fragments")
	flags.String("builddir", ".", "Root directory for build-location fragments")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.String("log-encoding", "console", "Log encoding: console, json")
	flags.String("log-output", "stderr", "Log destination: stderr, stdout or a file path")
}

func runMerge(cmd *cobra.Command, args []string) (err error) {
	// Argument errors are reported with usage; failures past this point are not.
	cmd.SilenceUsage = true

	s, err := newSession(cmd, afero.NewOsFs())
	if err != nil {
		return err
	}
	defer s.close()

	var m *metrics.Metrics
	if s.cfg.Metrics.File != "" {
		m, err = metrics.NewMetrics(prometheus.NewRegistry())
		if err != nil {
			return err
		}
	}

	out, err := openDest(s.fs, s.cfg.Merge.Dest, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", s.cfg.Merge.Dest, cerr)
		}
	}()

	s.log.Debug("merging fragments",
		"count", len(args),
		"srcdir", s.cfg.Merge.SrcDir,
		"builddir", s.cfg.Merge.BuildDir,
		"dest", s.cfg.Merge.Dest)

	if err := merge.WriteBanner(out, os.Args[0]); err != nil {
		return err
	}

	candidates := merge.Candidates(args, s.cfg.Merge.SrcDir, s.cfg.Merge.BuildDir)
	if err := merge.NewMerger(s.fs, s.log, m).Merge(out, candidates); err != nil {
		return err
	}

	if m != nil {
		if err := m.WriteTextfile(s.cfg.Metrics.File); err != nil {
			return err
		}
		s.log.Debug("metrics written", "path", s.cfg.Metrics.File)
	}

	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// openDest creates or truncates dest. An empty dest writes to stdout, which
// is never closed.
func openDest(fs afero.Fs, dest string, stdout io.Writer) (io.WriteCloser, error) {
	if dest == "" {
		return nopWriteCloser{stdout}, nil
	}
	f, err := fs.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination: %w", err)
	}
	return f, nil
}
