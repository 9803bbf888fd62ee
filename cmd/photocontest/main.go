package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/viper"

	"github.com/shutterclub/photocontest/internal/api"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
	"github.com/shutterclub/photocontest/internal/pkg/logger"
	"github.com/shutterclub/photocontest/internal/pkg/storage"
	"github.com/shutterclub/photocontest/internal/pkg/store"
	"github.com/shutterclub/photocontest/internal/pkg/store/xpgx"
)

func main() {
	initConfig()
	logger.Init(viper.GetBool(constants.ViperKeyDebug))
	defer logger.Sync()

	ctx := context.Background()

	pool, err := dialDatabase(ctx)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	blobs, err := storage.NewDiskStore(
		viper.GetString(constants.ViperKeyStorageDir),
		viper.GetString(constants.ViperKeyPublicBaseURL)+"/media",
	)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	svc, err := api.NewAPIService(
		store.NewStore(xpgx.NewPool(pool)),
		blobs,
		viper.GetString(constants.ViperKeyStorageDir),
	)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperKeyAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}

func initConfig() {
	viper.SetDefault(constants.ViperKeyAddr, ":8080")
	viper.SetDefault(constants.ViperKeyStorageDir, "./uploads")
	viper.SetDefault(constants.ViperKeyPublicBaseURL, "http://localhost:8080")
	viper.SetDefault(constants.ViperKeyCORSOrigin, "http://localhost:3000")
	viper.SetDefault(constants.ViperKeyDebug, false)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
}

// dialDatabase retries the initial connection: in compose setups the
// database usually comes up after the app.
func dialDatabase(ctx context.Context) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool

	operation := func() error {
		var err error
		pool, err = pgxpool.New(ctx, viper.GetString(constants.ViperKeyDatabaseDSN))
		if err != nil {
			return err
		}
		if err = pool.Ping(ctx); err != nil {
			pool.Close()
			return err
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), 15)
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return pool, nil
}
