// Package render implements program commands: rendering recipe stylesheets
// and listing recipe selectors.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"selb/archive"
	"selb/recipe"
	"selb/state"
)

// Build renders recipe stylesheet: "build RECIPE [DESTINATION]". RECIPE may be
// a zip bundle, then every recipe in it is rendered.
func Build(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no recipe has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	env.Overwrite = cmd.Bool("overwrite")

	log.Debug("Processing starting", zap.String("recipe", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Debug("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return buildStylesheet(env, log, src, dst, stdout(cmd))
}

// List prints "name<TAB>selector" for every recipe entry in natural name
// order: "list RECIPE". With --tree entries are dumped showing their
// composition instead.
func List(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no recipe has been specified")
	}
	return listSelectors(env, env.Log.Named("list"), src, cmd.Bool("tree"), stdout(cmd))
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// forEachRecipe loads recipe from src, or every recipe from src bundle, and
// calls fn for it. Failures of individual bundle recipes do not stop
// processing and are returned together.
func forEachRecipe(env *state.LocalEnv, log *zap.Logger, src string, fn func(entry string, rcp *recipe.Recipe) error) error {
	process := func(entry string, rcp *recipe.Recipe, err error) error {
		env.Stats.Recipes++
		if err == nil {
			err = fn(entry, rcp)
		}
		if err != nil {
			env.Stats.Failed++
		}
		return err
	}

	if !archive.IsBundle(src) {
		env.Rpt.Store("recipe/"+filepath.Base(src), src)
		rcp, err := recipe.LoadFile(src)
		return process(filepath.Base(src), rcp, err)
	}

	var errs error
	walkErr := archive.Walk(src, func(entry string, r io.Reader) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("unable to read '%s' from bundle: %w", entry, err)
		}
		env.Rpt.StoreData("recipe/"+filepath.Base(src)+"/"+entry, data)

		rcp, err := recipe.Load(bytes.NewReader(data))
		if err = process(entry, rcp, err); err != nil {
			log.Error("Unable to process bundled recipe", zap.String("entry", entry), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("recipe '%s': %w", entry, err))
		}
		return nil
	})
	return multierr.Append(walkErr, errs)
}

func buildStylesheet(env *state.LocalEnv, log *zap.Logger, src, dst string, w io.Writer) error {
	bundle := archive.IsBundle(src)
	// names produced by this run, --overwrite only applies to files left by
	// previous runs
	written := make(map[string]string)
	return forEachRecipe(env, log, src, func(entry string, rcp *recipe.Recipe) error {
		cat, err := rcp.Build(log)
		if err != nil {
			return fmt.Errorf("unable to build recipe '%s': %w", entry, err)
		}
		if rcp.Header == "" {
			rcp.Header = env.Cfg.Output.DefaultHeader
		}

		sheet, err := rcp.Stylesheet(cat)
		if err != nil {
			return fmt.Errorf("unable to prepare stylesheet '%s': %w", entry, err)
		}

		var buf bytes.Buffer
		if _, err := sheet.Format(&buf, env.Cfg.Output.FormatOptions()); err != nil {
			return fmt.Errorf("unable to format stylesheet: %w", err)
		}
		env.Rpt.StoreData("output/"+trimExt(entry)+".css", buf.Bytes())

		if len(dst) == 0 {
			if _, err := w.Write(buf.Bytes()); err != nil {
				return err
			}
		} else {
			name, err := outputName(env.Cfg.Output.NameTemplate, newNameValues(src, entry, rcp.Header, bundle))
			if err != nil {
				return err
			}
			if prev, ok := written[name]; ok {
				return fmt.Errorf("output file name '%s' already used for '%s'", name, prev)
			}
			if err := writeOutput(env, log, filepath.Join(dst, name), buf.Bytes()); err != nil {
				return err
			}
			written[name] = entry
		}
		env.Stats.Stylesheets++
		return nil
	})
}

func writeOutput(env *state.LocalEnv, log *zap.Logger, fname string, data []byte) error {
	if _, err := os.Stat(fname); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", fname)
		}
		log.Warn("Overwriting existing file", zap.String("file", fname))
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to check destination '%s': %w", fname, err)
	}

	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	log.Info("Stylesheet written", zap.String("file", fname), zap.Int("bytes", len(data)))
	return nil
}

func listSelectors(env *state.LocalEnv, log *zap.Logger, src string, tree bool, w io.Writer) error {
	bundle := archive.IsBundle(src)
	return forEachRecipe(env, log, src, func(entry string, rcp *recipe.Recipe) error {
		cat, err := rcp.Build(log)
		if err != nil {
			return fmt.Errorf("unable to build recipe '%s': %w", entry, err)
		}
		if bundle {
			if _, err := fmt.Fprintf(w, "# %s\n", entry); err != nil {
				return err
			}
		}
		for _, name := range cat.Names() {
			var (
				line string
				err  error
			)
			if tree {
				line, err = cat.Tree(name)
			} else {
				line, err = cat.Render(name)
				line = name + "\t" + line + "\n"
			}
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
		return nil
	})
}
