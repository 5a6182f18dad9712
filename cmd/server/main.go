package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/razanodeh01/Huffman-Text-Compression/internal/config"
	"github.com/razanodeh01/Huffman-Text-Compression/internal/handler"
	"github.com/razanodeh01/Huffman-Text-Compression/internal/notify"
	"github.com/razanodeh01/Huffman-Text-Compression/internal/repo"
	"github.com/razanodeh01/Huffman-Text-Compression/internal/router"
	"github.com/razanodeh01/Huffman-Text-Compression/internal/service"
	"github.com/razanodeh01/Huffman-Text-Compression/pkg/logger"
)

func main() {
	cfg := config.Load()
	logg := logger.New()
	ctx := context.Background()

	analysisRepo := repo.NewAnalysisRepoInMemory()
	if cfg.DatabaseURL != "" {
		pool, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		if err := repo.Migrate(ctx, pool); err != nil {
			log.Fatal(err)
		}
		analysisRepo = repo.NewAnalysisRepoPostgres(pool)
		logg.Infof("storing analyses in postgres")
	}

	pub := notify.Nop()
	if cfg.MQTTBroker != "" {
		p, err := notify.NewMQTT(cfg.MQTTBroker, cfg.MQTTTopic)
		if err != nil {
			log.Fatal(err)
		}
		pub = p
		logg.Infof("publishing analyses to %s on %s", cfg.MQTTTopic, cfg.MQTTBroker)
	}
	defer pub.Close()

	analysisSvc, err := service.NewAnalysisService(analysisRepo, pub, logg, cfg.CacheSize)
	if err != nil {
		log.Fatal(err)
	}
	analysisH := handler.NewAnalysisHandler(analysisSvc)

	r := gin.Default()
	router.Register(r, router.Dependencies{
		AnalysisHandler: analysisH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
