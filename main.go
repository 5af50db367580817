package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	hzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/hertz-contrib/cors"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/logs"
	"github.com/Hongbi-Kim/wavespace-core-api/provider"
)

func main() {
	provider.Init()
	c := provider.Get().Config

	tracer, cfg := hertztracing.NewServerTracer()
	srvOpts := []hzconfig.Option{
		tracer,
		server.WithHostPorts(c.ListenOn),
	}
	if c.MetricsListenOn != "" {
		srvOpts = append(srvOpts, server.WithTracer(prometheus.NewServerTracer(c.MetricsListenOn, "/metrics")))
	}

	h := server.Default(srvOpts...)
	h.Use(hertztracing.ServerMiddleware(cfg))
	h.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
	}))

	register(h)

	logs.Infof("%s listening on %s", c.Name, c.ListenOn)
	h.Spin()
}
