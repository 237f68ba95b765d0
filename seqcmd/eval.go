package seqcmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"myceliumweb.org/seqvec/seqexpr"
	"myceliumweb.org/seqvec/seqss"
)

var eval = star.Command{
	Metadata: star.Metadata{
		Short: "evaluate an expression against the stored sequences",
	},
	Flags: []star.IParam{DBParam, saveParam},
	Pos:   []star.IParam{exprParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		env, err := loadEnv(c.Context, db)
		if err != nil {
			return err
		}
		n, err := seqexpr.Parse(exprParam.Load(c))
		if err != nil {
			return err
		}
		out, err := seqexpr.Eval(n, env)
		if err != nil {
			return err
		}
		if name := saveParam.Load(c); name != "" {
			if err := seqss.Put(c.Context, db, name, out); err != nil {
				return err
			}
		}
		c.Printf("%v\n", out)
		return nil
	},
}

var run = star.Command{
	Metadata: star.Metadata{
		Short: "evaluate script files, one expression per line",
	},
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{scriptsParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		env, err := loadEnv(c.Context, db)
		if err != nil {
			return err
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		cache := seqexpr.NewCache(128)
		paths := scriptsParam.LoadAll(c)
		outputs := make([]string, len(paths))
		// the env is shared read-only across the group
		eg, ctx := errgroup.WithContext(logctx.NewContext(c.Context, l))
		for i, p := range paths {
			eg.Go(func() error {
				out, err := runScript(ctx, cache, env, p)
				if err != nil {
					return fmt.Errorf("%s: %w", p, err)
				}
				outputs[i] = out
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		for _, out := range outputs {
			c.Printf("%s", out)
		}
		return nil
	},
}

func runScript(ctx context.Context, cache *seqexpr.Cache, env seqexpr.Env, p string) (string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	var count int
	sb := strings.Builder{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		n, err := cache.Parse(line)
		if err != nil {
			return "", err
		}
		out, err := seqexpr.Eval(n, env)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "%v\n", out)
		count++
	}
	logctx.Infof(ctx, "%s: evaluated %d expressions", p, count)
	return sb.String(), nil
}

// loadEnv pulls every stored sequence into memory so expressions can
// reference any of them by name.
func loadEnv(ctx context.Context, db *sqlx.DB) (seqexpr.Env, error) {
	names, err := seqss.List(ctx, db)
	if err != nil {
		return nil, err
	}
	env := seqexpr.Env{}
	for _, name := range names {
		s, err := seqss.Get(ctx, db, name)
		if err != nil {
			return nil, err
		}
		env[name] = s
	}
	return env, nil
}

var exprParam = star.Param[string]{Name: "expr", Parse: star.ParseString}

var saveParam = star.Param[string]{
	Name:    "save",
	Default: star.Ptr(""),
	Parse:   star.ParseString,
}

var scriptsParam = star.Param[string]{
	Name:     "scripts",
	Repeated: true,
	Parse:    star.ParseString,
}
