package components

import (
	"campus-parking/internal/pkg/clock"
	"campus-parking/internal/pkg/config"
	"campus-parking/internal/pkg/jwt"
	"campus-parking/internal/pkg/password"
	"campus-parking/internal/usecase"
	"campus-parking/internal/usecase/commands"
	"campus-parking/internal/usecase/queries"
	"campus-parking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCredentialChecker,
	NewTokenIssuer,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOccupancyUseCase,
		NewDetectionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLotQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCredentialChecker(cfg config.Config) (commands.CredentialChecker, error) {
	checker, err := password.NewHashChecker(cfg.Admin.PasswordHash)
	if err != nil {
		return nil, err
	}
	return checker, nil
}

func NewTokenIssuer(s *jwt.Service) commands.TokenIssuer {
	return s
}

func NewDetectionCommands(classifier shared.SpotClassifier, cfg config.Config) commands.DetectionCommands {
	return commands.NewDetectionUseCase(classifier, cfg.Classifier.Timeout)
}
