package bootstrap

import (
	"errors"
	"log"

	"cpu-catalog-be/internal/config"
	"cpu-catalog-be/internal/controller"
	"cpu-catalog-be/internal/pkg/logger"
	"cpu-catalog-be/internal/pkg/metrics"
	"cpu-catalog-be/internal/repository/unitofwork"
	"cpu-catalog-be/internal/service"

	pktNats "cpu-catalog-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CpuController    controller.ICpuController
	SocketController controller.ISocketController
	HealthController controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger  logger.ILogger
	Metrics *metrics.HTTPMetrics

	auditLogger logger.ILogger
	pubSub      *gochannel.GoChannel
	natsPub     *pktNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	auditLogger := logger.NewIsolatedLogger(cfg.Events.LogFilePath)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// Forwarding is optional; a nil forwarder keeps events in-process.
	var forwarder service.EventForwarder
	var natsPub *pktNats.Publisher
	if cfg.Events.NatsURL != "" {
		p, err := pktNats.NewPublisher(cfg.Events.NatsURL, cfg.Events.NatsStream, cfg.Events.NatsSubjects)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = p
			forwarder = p
		}
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.Topic, auditLogger, forwarder)

	socketService := service.NewSocketService(uowFactory, publisherService, sysLogger)
	cpuService := service.NewCpuService(uowFactory, publisherService, sysLogger)

	// 4. Controllers
	return &Container{
		CpuController:    controller.NewCpuController(cpuService),
		SocketController: controller.NewSocketController(socketService),
		HealthController: controller.NewHealthController(db),

		ConsumerService: consumerService,

		Logger:  sysLogger,
		Metrics: metrics.NewHTTPMetrics("cpu_catalog"),

		auditLogger: auditLogger,
		pubSub:      pubSub,
		natsPub:     natsPub,
	}
}

// Close stops the event bus, drops the NATS connection and flushes loggers.
func (c *Container) Close() error {
	var errs []error
	if err := c.pubSub.Close(); err != nil {
		errs = append(errs, err)
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	// stdout sync errors are expected on some terminals
	_ = c.Logger.Sync()
	if err := c.auditLogger.Sync(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
