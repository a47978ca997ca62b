package main

import (
	"fmt"
	"io"

	"github.com/desertwitch/posixfs/internal/errno"
	"github.com/desertwitch/posixfs/internal/posix"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

func getCmdStat(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stat PATH",
		Short: "Show the status of a path without following symbolic links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.fsHandler.Stat(args[0])
			if err != nil {
				return err
			}

			result := statResult{Path: args[0], Stat: st}
			if st.Exists {
				if result.ModeString, err = st.ModeString(); err != nil {
					return err
				}
			}

			return app.print(result, func(w io.Writer) error {
				return renderFields(w, statFields(result))
			})
		},
	}
}

func getCmdChown(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chown PATH UID GID",
		Short: "Change the owner of a path, not following symbolic links",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := parseInt("uid", args[1])
			if err != nil {
				return err
			}

			gid, err := parseInt("gid", args[2])
			if err != nil {
				return err
			}

			return app.fsHandler.Chown(args[0], uid, gid)
		},
	}
}

func getCmdChmod(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chmod PATH MODE",
		Short: "Set the permission bits of a path (octal)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(args[1])
			if err != nil {
				return err
			}

			return app.fsHandler.SetMode(args[0], mode)
		},
	}
}

func getCmdMknod(app *App) *cobra.Command {
	var major, minor uint32

	cmd := &cobra.Command{
		Use:   "mknod PATH TYPE MODE",
		Short: "Create a block (b), character (c) or FIFO (p) special file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := parseNodeType(args[1])
			if err != nil {
				return err
			}

			mode, err := parseMode(args[2])
			if err != nil {
				return err
			}

			return app.fsHandler.Mknod(args[0], typ|(mode&posix.PermissionMask), unix.Mkdev(major, minor))
		},
	}

	cmd.Flags().Uint32Var(&major, "major", 0, "major device number")
	cmd.Flags().Uint32Var(&minor, "minor", 0, "minor device number")

	return cmd
}

func getCmdMkfifo(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mkfifo PATH MODE",
		Short: "Create a named pipe",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(args[1])
			if err != nil {
				return err
			}

			return app.fsHandler.Mkfifo(args[0], mode)
		},
	}
}

func getCmdSymlink(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "symlink TARGET PATH",
		Short: "Create PATH as a symbolic link to TARGET",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.fsHandler.Symlink(args[1], args[0])
		},
	}
}

func getCmdLink(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "link TARGET PATH",
		Short: "Create PATH as a hard link to TARGET",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.fsHandler.Link(args[1], args[0])
		},
	}
}

func getCmdReadlink(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "readlink PATH",
		Short: "Print the target of a symbolic link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.fsHandler.Readlink(args[0])
			if err != nil {
				return err
			}

			return app.printLine("target", target)
		},
	}
}

func getCmdUtime(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "utime PATH ATIME_MS MTIME_MS",
		Short: "Set access and modification times (milliseconds, truncated to seconds)",
		Long: `Set access and modification times of PATH, following symbolic links.

  Times are milliseconds since the epoch and are truncated to whole seconds.
  Passing "-" for one of them keeps that timestamp unchanged.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			keepAtime, keepMtime := args[1] == "-", args[2] == "-"

			if keepAtime && keepMtime {
				return errno.Wrap("parse times", args[0], unix.EINVAL)
			}

			var atime, mtime int64
			var err error

			if !keepAtime {
				if atime, err = parseInt64("atime", args[1]); err != nil {
					return err
				}
			}

			if !keepMtime {
				if mtime, err = parseInt64("mtime", args[2]); err != nil {
					return err
				}
			}

			switch {
			case keepAtime:
				return app.fsHandler.SetModifyTime(args[0], mtime)
			case keepMtime:
				return app.fsHandler.SetAccessTime(args[0], atime)
			}

			return app.fsHandler.Utime(args[0], atime, mtime)
		},
	}
}

func getCmdMkdir(app *App) *cobra.Command {
	var (
		parents  bool
		uid, gid int
	)

	cmd := &cobra.Command{
		Use:   "mkdir PATH MODE",
		Short: "Create a directory with exact permission bits (octal)",
		Long: `Create the directory PATH.

  With --parents, missing parent directories are created too. Every created
  directory gets MODE regardless of the umask and is owned by --uid and
  --gid, where -1 keeps the default. PATH itself must not exist.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(args[1])
			if err != nil {
				return err
			}

			if parents {
				return app.fsHandler.MkdirAll(args[0], mode, uid, gid)
			}

			return app.fsHandler.Mkdir(args[0], mode)
		},
	}

	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "create missing parents, applying mode and ownership")
	cmd.Flags().IntVar(&uid, "uid", -1, "owner of created directories (with --parents)")
	cmd.Flags().IntVar(&gid, "gid", -1, "group of created directories (with --parents)")

	return cmd
}

func getCmdRemove(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PATH",
		Short: "Remove a path and everything below it, not following symbolic links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.fsHandler.DeleteRecursive(args[0])
		},
	}
}

func getCmdRename(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mv SRC DST",
		Short: "Rename SRC to DST, replacing DST where rename(2) allows it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.fsHandler.RenameTo(args[0], args[1])
		},
	}
}

func getCmdMktemp(app *App) *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "mktemp [PREFIX]",
		Short: "Create a new empty temporary file and print its path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				path string
				err  error
			)

			switch {
			case template != "":
				path, err = app.fsHandler.MakeTemp(template)
			case len(args) == 1:
				path, err = app.fsHandler.Mktemp(args[0])
			default:
				path, err = app.fsHandler.Mktemp(app.cfg.TempPrefix)
			}
			if err != nil {
				return err
			}

			return app.printLine("path", path)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "", "full template ending in XXXXXX")

	return cmd
}

func getCmdCopy(app *App) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Recreate SRC at DST with its type, permissions and ownership",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.fsHandler.CopyTo(args[0], args[1], overwrite)
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "overwrite", "f", false, "replace an existing destination")

	return cmd
}

func getCmdCmp(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp A [B]",
		Short: "Compare the content of two regular files",
		Long: `Compare the content of the regular files A and B.

  When B is omitted or "-", A is compared against standard input.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				equal bool
				err   error
			)

			if len(args) == 1 || args[1] == "-" {
				data, rerr := io.ReadAll(app.stdin)
				if rerr != nil {
					return fmt.Errorf("(posixctl-cmp) failed to read input: %w", rerr)
				}
				equal, err = app.fsHandler.ContentEqualsBytes(args[0], data)
			} else {
				equal, err = app.fsHandler.ContentEquals(args[0], args[1])
			}
			if err != nil {
				return err
			}

			if err := app.printLine("equal", equal); err != nil {
				return err
			}

			if !equal {
				return ErrContentDiffers
			}

			return nil
		},
	}
}
