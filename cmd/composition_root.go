package cmd

import (
	"gorm.io/gorm"

	httpin "github.com/sunnycool038/Decentralized-Delivery-Network/internal/adapters/in/http"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/adapters/out/postgres"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/adapters/out/postgres/ledgerrepo"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/commands"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/queries"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/services"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/jobs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/pkg/logger"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	escrow     services.EscrowAccounting
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	pool, err := kernel.NewPrincipal(config.EscrowPoolAccount)
	if err != nil {
		return CompositionRoot{}, err
	}
	escrow, err := services.NewEscrowAccounting(pool)
	if err != nil {
		return CompositionRoot{}, err
	}
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		escrow:     escrow,
	}, nil
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	var f commands.EscrowUoWFactory = FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackageCommandHandler(f, c.escrow)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptPackageCommandHandler() commands.AcceptPackageCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptPackageCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePackageLocationCommandHandler() commands.UpdatePackageLocationCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePackageLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.EscrowUoWFactory = FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.escrow)
}

func (c *CompositionRoot) CreateCancelPackageCommandHandler() commands.CancelPackageCommandHandler {
	var f commands.EscrowUoWFactory = FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelPackageCommandHandler(f, c.escrow)
}

func (c *CompositionRoot) CreateFileDisputeCommandHandler() commands.FileDisputeCommandHandler {
	var f commands.DisputeUoWFactory = FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFileDisputeCommandHandler(f)
}

func (c *CompositionRoot) CreateRateCourierCommandHandler() commands.RateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenPackagesQueryHandler() queries.GetOpenPackagesQueryHandler {
	return queries.NewGetOpenPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierQueryHandler() queries.GetCourierQueryHandler {
	return queries.NewGetCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierPackagesQueryHandler() queries.GetCourierPackagesQueryHandler {
	return queries.NewGetCourierPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDisputeQueryHandler() queries.GetDisputeQueryHandler {
	return queries.NewGetDisputeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreatePackageCommandHandler(),
		c.CreateRegisterCourierCommandHandler(),
		c.CreateAcceptPackageCommandHandler(),
		c.CreateUpdatePackageLocationCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateCancelPackageCommandHandler(),
		c.CreateFileDisputeCommandHandler(),
		c.CreateRateCourierCommandHandler(),
		c.CreateGetPackageQueryHandler(),
		c.CreateGetOpenPackagesQueryHandler(),
		c.CreateGetCourierQueryHandler(),
		c.CreateGetCourierPackagesQueryHandler(),
		c.CreateGetDisputeQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	auditJob := jobs.NewEscrowAuditJob(
		c.gormDB,
		ledgerrepo.NewGormLedger(c.gormDB),
		c.escrow.Pool(),
		logger.Get(),
	)
	return jobs.NewJobManager(auditJob)
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncEscrowUoWFactory func() commands.EscrowUoW

func (f FuncEscrowUoWFactory) Create() commands.EscrowUoW {
	return f()
}

type FuncDisputeUoWFactory func() commands.DisputeUoW

func (f FuncDisputeUoWFactory) Create() commands.DisputeUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
