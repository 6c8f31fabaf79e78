// Command relicpack is a thin CLI over the archive/alz/twx packages,
// exposing the toolchain's pack/unpack/compress/decompress/convert
// workflows. Directory walking, argument parsing, and the PNG codec
// are the external collaborators spec.md treats as out of core; this
// command is the glue that wires them to the core codecs.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/relicpack/relic/archive"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "relicpack",
		Short: "Pack, unpack, and convert assets in an INFO/GAME archive",
	}
	root.AddCommand(unpackCmd(), packCmd(), compressCmd(), decompressCmd(), convertCmd())
	return root
}

func unpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <info> <game> <out-dir>",
		Short: "Extract every asset payload from an archive to a directory",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Printf("unpack: %s + %s -> %s", args[0], args[1], args[2])
			if err := archive.Unpack(args[0], args[1], args[2]); err != nil {
				return err
			}
			log.Printf("unpack: done")
			return nil
		},
	}
}

func packCmd() *cobra.Command {
	var compress bool
	cmd := &cobra.Command{
		Use:   "pack <info> <original-dir> <edited-dir> <out-dir>",
		Short: "Rebuild INFO.DAT and GAME.DAT from an original extraction plus edits",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Printf("pack: %s + %s (edits: %s) -> %s", args[0], args[1], args[2], args[3])
			var opts []archive.Option
			if compress {
				opts = append(opts, archive.WithCompression(true))
			}
			if err := archive.Pack(args[0], args[1], args[2], args[3], opts...); err != nil {
				return err
			}
			log.Printf("pack: done")
			return nil
		},
	}
	cmd.Flags().BoolVar(&compress, "compress", false, "ALZ-compress payloads before writing them to the blob")
	return cmd
}

func compressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress <in-dir> <out-dir>",
		Short: "ALZ-compress every file under in-dir into out-dir",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Printf("compress: %s -> %s", args[0], args[1])
			if err := archive.CompressDir(args[0], args[1]); err != nil {
				return err
			}
			log.Printf("compress: done")
			return nil
		},
	}
}

func decompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <in-dir> <out-dir>",
		Short: "ALZ-decompress every file under in-dir into out-dir",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Printf("decompress: %s -> %s", args[0], args[1])
			if err := archive.DecompressDir(args[0], args[1]); err != nil {
				return err
			}
			log.Printf("decompress: done")
			return nil
		},
	}
}

func convertCmd() *cobra.Command {
	var toPNG bool
	cmd := &cobra.Command{
		Use:   "convert <src> <dst>",
		Short: "Convert a TWX texture to PNG, or re-encode a PNG over a TWX's payload",
		Long: "With --to-png, decodes <src> (a .twx file) to <dst> (a .png file).\n" +
			"Without it, <src> is a .png file re-encoded over the existing TWX\n" +
			"payload at <dst>, which is both read (for its header) and overwritten.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toPNG {
				log.Printf("convert: %s -> %s (TWX to PNG)", args[0], args[1])
				return archive.ConvertTWXToPNG(args[0], args[1])
			}
			log.Printf("convert: %s -> %s (PNG to TWX)", args[0], args[1])
			return archive.ConvertPNGToTWX(args[0], args[1], args[1])
		},
	}
	cmd.Flags().BoolVar(&toPNG, "to-png", false, "decode a TWX texture to PNG instead of the reverse")
	return cmd
}
