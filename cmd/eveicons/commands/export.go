package commands

import (
	"github.com/spf13/cobra"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
)

func (c *CLI) newServiceBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service_bundle",
		Short: "Write a zip of every cached icon plus service metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("out")
			return c.app.Run(cmd.Context(), c.runOptions(cmd, domain.OutputMode{
				Kind: domain.OutputServiceBundle,
				Out:  out,
			}))
		},
	}
	cmd.Flags().String("out", "", "Output zip file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (c *CLI) newIECCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iec",
		Short: "Write a legacy image export collection zip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("out")
			return c.app.Run(cmd.Context(), c.runOptions(cmd, domain.OutputMode{
				Kind: domain.OutputIEC,
				Out:  out,
			}))
		},
	}
	cmd.Flags().String("out", "", "Output zip file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (c *CLI) newWebDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web_dir",
		Short: "Synchronize a web-servable directory of icon links and manifests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("out")
			copyFiles, _ := cmd.Flags().GetBool("copy_files")
			hardLink, _ := cmd.Flags().GetBool("hard_link")
			return c.app.Run(cmd.Context(), c.runOptions(cmd, domain.OutputMode{
				Kind:      domain.OutputWeb,
				Out:       out,
				CopyFiles: copyFiles,
				HardLink:  hardLink,
			}))
		},
	}
	cmd.Flags().String("out", "", "Output directory")
	_ = cmd.MarkFlagRequired("out")
	cmd.Flags().Bool("copy_files", false, "Copy cache files instead of linking")
	cmd.Flags().Bool("hard_link", false, "Hard-link cache files instead of symlinking")
	cmd.MarkFlagsMutuallyExclusive("copy_files", "hard_link")
	return cmd
}

func (c *CLI) newChecksumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checksum",
		Short: "Print or write a digest of the current icon cache index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("out")
			return c.app.Run(cmd.Context(), c.runOptions(cmd, domain.OutputMode{
				Kind: domain.OutputChecksum,
				Out:  out,
			}))
		},
	}
	cmd.Flags().String("out", "", "Output file; prints to stdout when omitted")
	return cmd
}
