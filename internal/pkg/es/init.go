package es

import (
	"Inkwell/internal/api/config"
	"Inkwell/internal/pkg/logger"
	"context"
	log "log/slog"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/pkg/errors"
)

var (
	Client    *elasticsearch.TypedClient
	PostIndex string
)

// NotFoundCode 文档不存在时 ES 返回的状态码
const NotFoundCode = 404

// InitClient 初始化 Elasticsearch 客户端并确认集群可达
func InitClient() error {
	esCfg := config.Cfg.Elastic
	PostIndex = esCfg.Indices.PostIndex

	client, err := elasticsearch.NewTypedClient(elasticsearch.Config{
		Addresses: []string{esCfg.Address},
		Username:  esCfg.Username,
		Password:  esCfg.Password,
		Transport: &logger.SearchTransport{Next: http.DefaultTransport},
	})
	if err != nil {
		return errors.Wrap(err, "build elasticsearch client")
	}

	info, err := client.Info().Do(context.Background())
	if err != nil {
		return errors.Wrap(err, "elasticsearch info")
	}

	Client = client
	log.Info("elasticsearch connected", "version", info.Version.Int)
	return nil
}
