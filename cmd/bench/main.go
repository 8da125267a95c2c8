package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/QuangTung97/crowd-escrow/config"
	"github.com/QuangTung97/crowd-escrow/pkg/migration"
	"github.com/QuangTung97/crowd-escrow/repository"
	"github.com/QuangTung97/crowd-escrow/service/escrow"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchFundCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

type benchOptions struct {
	sqlitePath string
	numThreads int
	numFunds   int
}

func connect(conf config.Config, sqlitePath string) *sqlx.DB {
	if sqlitePath == "" {
		return conf.MySQL.MustConnect()
	}

	db := sqlx.MustConnect(migration.DialectSQLite,
		fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", sqlitePath))
	db.SetMaxOpenConns(1)
	if err := migration.Up(db); err != nil {
		panic(err)
	}
	return db
}

func benchFund(opts benchOptions) {
	conf := config.Load()
	conf.Escrow.AllowDeposit = true
	conf.Escrow.CampaignDuration = 24 * time.Hour

	db := connect(conf, opts.sqlitePath)
	provider := repository.NewProvider(db)
	service := escrow.NewDefaultService(provider, conf.Escrow)

	ctx := context.Background()
	runID := uuid.NewString()

	campaignKey, err := service.CreateCampaign(ctx, escrow.CreateCampaignInput{
		Creator:       "bench-creator",
		Name:          "bench-" + runID[:8],
		Description:   "concurrent funding benchmark",
		Goal:          1 << 62,
		RewardName:    "Bench",
		RewardSymbol:  "BNCH",
		RewardURI:     "https://example.com/bench.json",
		RewardTokenID: "bench-" + runID,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println("CAMPAIGN:", campaignKey)

	supporterOf := func(thread int, i int) string {
		return fmt.Sprintf("bench-%s-%d-%d", runID[:8], thread, i)
	}

	for th := 0; th < opts.numThreads; th++ {
		for i := 0; i < opts.numFunds; i++ {
			if err := service.Deposit(ctx, supporterOf(th, i), 1000); err != nil {
				panic(err)
			}
		}
	}

	pool, err := ants.NewPool(opts.numThreads)
	if err != nil {
		panic(err)
	}
	defer pool.Release()

	durations := make([][]time.Duration, opts.numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(opts.numThreads)
	for th := 0; th < opts.numThreads; th++ {
		threadIndex := th
		err := pool.Submit(func() {
			defer wg.Done()

			for i := 0; i < opts.numFunds; i++ {
				start := time.Now()
				_, err := service.Fund(ctx, escrow.FundInput{
					CampaignKey: campaignKey,
					Supporter:   supporterOf(threadIndex, i),
					Amount:      uint64(i + 1),
				})
				if err != nil {
					fmt.Println(threadIndex, i, err)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		})
		if err != nil {
			panic(err)
		}
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	numHistory := opts.numThreads * opts.numFunds
	if numHistory == 0 {
		return
	}
	history := make([]time.Duration, 0, numHistory)

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}
	avg := total / time.Duration(numHistory)

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("AVG:", avg)

	view, err := service.GetCampaign(ctx, campaignKey)
	if err != nil {
		panic(err)
	}
	fmt.Println("RAISED:", view.RaisedTotal, "SUPPORTERS:", view.SupportersCount)
}

func benchFundCommand() *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "fund",
		Short: "benchmark concurrent funding of one campaign",
		Run: func(cmd *cobra.Command, args []string) {
			benchFund(opts)
		},
	}
	cmd.Flags().StringVar(&opts.sqlitePath, "sqlite", "", "use a local sqlite database file instead of mysql")
	cmd.Flags().IntVar(&opts.numThreads, "threads", 20, "number of concurrent supporters")
	cmd.Flags().IntVar(&opts.numFunds, "funds", 100, "contributions per thread")
	return cmd
}
