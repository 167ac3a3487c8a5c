package components

import (
	"skillforge/internal/infra/readstore"
	repo_impl "skillforge/internal/infra/repository"
	"skillforge/internal/usecase/commands"
	"skillforge/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// The coupon read store reuses the write-side repository for full
		// aggregate loads, so the concrete type stays available alongside
		// the command port.
		repo_impl.NewCouponRepository,
		func(r *repo_impl.CouponRepository) commands.CouponRepository { return r },
		fx.Annotate(
			repo_impl.NewCertificateRepository,
			fx.As(new(commands.CertificateRepository)),
		),
		fx.Annotate(
			repo_impl.NewEnrollmentSource,
			fx.As(new(commands.EnrollmentSource)),
		),
		fx.Annotate(
			repo_impl.NewCourseSource,
			fx.As(new(commands.CourseSource)),
		),
		fx.Annotate(
			repo_impl.NewIdentitySource,
			fx.As(new(commands.IdentitySource)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewCourseReadStore,
			fx.As(new(queries.CourseReadStore)),
		),
		fx.Annotate(
			readstore.NewCertificateReadStore,
			fx.As(new(queries.CertificateReadStore)),
		),
	),
)
