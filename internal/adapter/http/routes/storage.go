package routes

import (
	"context"
	"fmt"

	"zap_shift/internal/adapter/persistence/mongorepo"
	"zap_shift/internal/adapter/persistence/repository"
	"zap_shift/internal/config"
	"zap_shift/internal/infrastructure/database"
	"zap_shift/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type repositories struct {
	parcels  interfaces.IParcelRepository
	payments interfaces.IPaymentRepository
	users    interfaces.IUserRepository
	riders   interfaces.IRiderRepository
	close    func(ctx context.Context) error
}

func openRepositories(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return repositories{}, err
		}
		logger.Info("using dynamodb storage", zap.String("region", cfg.DynamoDB.Region))
		return repositories{
			parcels:  repository.NewParcelDynamoRepository(ddb, cfg.DynamoDB.ParcelsTable),
			payments: repository.NewPaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable),
			users:    repository.NewUserDynamoRepository(ddb, cfg.DynamoDB.UsersTable),
			riders:   repository.NewRiderDynamoRepository(ddb, cfg.DynamoDB.RidersTable),
			close:    func(context.Context) error { return nil },
		}, nil

	case config.StorageMongoDB:
		client, err := database.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return repositories{}, err
		}
		db := client.Database(cfg.Mongo.Database)
		if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return repositories{}, fmt.Errorf("ensure mongo indexes: %w", err)
		}
		logger.Info("using mongodb storage", zap.String("database", cfg.Mongo.Database))
		return repositories{
			parcels:  mongorepo.NewParcelMongoRepository(db),
			payments: mongorepo.NewPaymentMongoRepository(db),
			users:    mongorepo.NewUserMongoRepository(db),
			riders:   mongorepo.NewRiderMongoRepository(db),
			close:    client.Disconnect,
		}, nil

	default:
		return repositories{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
