package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/solution-quest/internal/errors"
	"github.com/KirkDiggler/solution-quest/internal/redis"
	"github.com/KirkDiggler/solution-quest/internal/repositories/content"
)

var (
	cacheDelete bool
	cacheYes    bool
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the shared Redis content cache",
}

var cacheCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Find cached datasets that no longer decode",
	Long: `Check scans quest:content:* keys in Redis and lists entries that are not
a row table or name an unknown dataset. With --delete they are removed so the
next load reads the content source again.

  Example: quest cache check --redis-addr localhost:6379 --delete`,
	RunE: runCacheCheck,
}

func init() {
	cacheCheckCmd.Flags().BoolVar(&cacheDelete, "delete", false, "delete corrupt entries")
	cacheCheckCmd.Flags().BoolVar(&cacheYes, "yes", false, "delete without asking")
	cacheCmd.AddCommand(cacheCheckCmd)
}

func runCacheCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.RedisAddr == "" {
		return errors.InvalidArgument("a redis address is required (--redis-addr or QUEST_REDIS_ADDR)")
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, cfg.RedisAddr, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	cache, err := content.NewRedisCache(&content.RedisCacheConfig{Client: client, TTL: cfg.CacheTTL})
	if err != nil {
		return err
	}

	out, err := cache.Check(ctx)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Checked %d cached datasets, found %d corrupt\n", out.Checked, len(out.Corrupt))
	for _, dataset := range out.Corrupt {
		fmt.Fprintf(w, "  - %s\n", dataset)
	}

	if len(out.Corrupt) == 0 || !cacheDelete {
		return nil
	}

	if !cacheYes {
		fmt.Fprint(w, "Delete these entries? (yes/no): ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(w, "Aborted, no changes made")
			return nil
		}
	}

	removed, err := cache.Invalidate(ctx, out.Corrupt...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %d entries\n", removed)
	return nil
}
