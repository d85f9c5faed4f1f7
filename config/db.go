package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB membuat client MongoDB dari konfigurasi. Jika DATABASE_URL atau
// DATABASE_NAME kosong, hasilnya (nil, nil): proses tetap jalan tanpa store.
// Tidak ada ping di sini; konektivitas diperiksa lewat repository.Handle.
func ConnectDB(ctx context.Context, cfg DatabaseConfig, log *zap.Logger) (*mongo.Database, error) {
	if !cfg.Configured() {
		log.Warn("⚠️ DATABASE_URL/DATABASE_NAME belum diset, berjalan tanpa database",
			zap.Bool("url_set", cfg.URL != ""),
			zap.Bool("name_set", cfg.Name != ""),
		)
		return nil, nil
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	clientOptions := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("gagal connect ke MongoDB: %w", err)
	}

	log.Info("✅ Client MongoDB dibuat", zap.String("database", cfg.Name))
	return client.Database(cfg.Name), nil
}

// DisconnectDB menutup koneksi client; aman dipanggil dengan nil.
func DisconnectDB(db *mongo.Database, log *zap.Logger) {
	if db == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Client().Disconnect(ctx); err != nil {
		log.Warn("MongoDB disconnect gagal", zap.Error(err))
	}
}
