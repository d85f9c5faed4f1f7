package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"simata/config"
	_ "simata/docs" // Import docs for swagger
	"simata/logger"
	"simata/metrics"
	"simata/repository"
	"simata/routes"
)

//	@title			SiMATA API
//	@version		0.1
//	@description	Sistem Informasi Manajemen Aset & Tata Kelola: gateway dokumen generik dan katalog skema aset.
//	@description
//	@description	**Catatan:**
//	@description	- Tidak ada autentikasi; CORS terbuka untuk semua origin.
//	@description	- Skema hanya referensi kecuali STRICT_SCHEMA=true.

//	@BasePath	/

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfigurasi tidak valid: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	m := metrics.New()

	// Koneksi ke MongoDB; kegagalan tidak menghentikan proses
	db, err := config.ConnectDB(context.Background(), cfg.Database, zlog)
	if err != nil {
		zlog.Error("❌ Database tidak dapat diinisialisasi", zap.Error(err))
	}

	var store repository.DocumentStore
	if db != nil {
		store = repository.NewMongoStore(db)
	}
	handle := repository.NewHandle(store,
		repository.WithTimeout(cfg.Database.StoreTimeout),
		repository.WithMetrics(m),
	)
	if db != nil {
		if err := handle.Ping(context.Background()); err != nil {
			zlog.Warn("⚠️ MongoDB belum bisa diakses, berjalan dalam mode degraded", zap.Error(err))
		} else {
			zlog.Info("✅ Terhubung ke MongoDB", zap.String("database", cfg.Database.Name))
		}
	}
	zlog.Info("store handle siap", zap.Stringer("state", handle.State()))

	app := routes.NewApp(routes.Dependencies{
		Config:  cfg,
		Store:   handle,
		Logger:  zlog,
		Metrics: m,
	})

	go func() {
		zlog.Info("🚀 Server jalan", zap.String("addr", cfg.ListenAddr()), zap.Bool("strict_schema", cfg.Schema.Strict))
		if err := app.Listen(cfg.ListenAddr()); err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		zlog.Warn("shutdown paksa", zap.Error(err))
	}
	config.DisconnectDB(db, zlog)
	zlog.Info("server berhenti")
}
