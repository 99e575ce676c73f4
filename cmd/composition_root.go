package cmd

import (
	"log/slog"

	"pipeyard/internal/adapters/out/postgres"
	"pipeyard/internal/core/application/usecases/commands"
	"pipeyard/internal/core/application/usecases/queries"
	"pipeyard/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	store      ports.DocumentStore
	notifier   ports.Notifier
	extractor  ports.ManifestExtractor
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	store ports.DocumentStore,
	notifier ports.Notifier,
	extractor ports.ManifestExtractor,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		store:      store,
		notifier:   notifier,
		extractor:  extractor,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewRequestCommandHandler() commands.ReviewRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleDeliveryCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateSchedulePickupCommandHandler() commands.SchedulePickupCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSchedulePickupCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateChangeLoadStatusCommandHandler() commands.ChangeLoadStatusCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeLoadStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachDocumentCommandHandler() commands.AttachDocumentCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachDocumentCommandHandler(f, c.store, c.logger)
}

func (c *CompositionRoot) CreateProcessManifestsCommandHandler() commands.ProcessManifestsCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessManifestsCommandHandler(f, c.extractor, c.logger)
}

func (c *CompositionRoot) CreateGetRequestStatusQueryHandler() queries.GetRequestStatusQueryHandler {
	return queries.NewGetRequestStatusQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateGetRequestLoadsQueryHandler() queries.GetRequestLoadsQueryHandler {
	return queries.NewGetRequestLoadsQueryHandler(c.gormDB)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}
