// Package mongostore implements the content and user repositories on top of
// MongoDB. Documents use the same string ULID identifiers as the file
// backend, stored in _id, so records move between backends unchanged.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

const connectTimeout = 10 * time.Second

// Store owns the mongo client and hands out the per-kind repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logging.ChanneledLogger
}

// NewStore connects to MongoDB, verifies the connection with a ping, and
// creates the unique indexes the repositories rely on.
func NewStore(ctx context.Context, uri, database string, logger *logging.ChanneledLogger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(database),
		logger: logger,
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	logger.Database().Info("Connected to MongoDB", "database", database)
	return s, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ensureIndexes creates the unique indexes for blog slugs and admin emails.
// Uniqueness is enforced here instead of in repository code so concurrent
// writers cannot race past an application-level check.
func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := s.db.Collection("blogs").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("failed to create blog slug index: %w", err)
	}

	_, err = s.db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}

	return nil
}

// Profile returns the profile repository.
func (s *Store) Profile() repositories.ProfileRepository {
	return &ProfileRepository{coll: s.db.Collection("profile"), logger: s.logger}
}

// Education returns the education repository.
func (s *Store) Education() repositories.EducationRepository {
	return &EducationRepository{coll: s.db.Collection("education"), logger: s.logger}
}

// Experience returns the experience repository.
func (s *Store) Experience() repositories.ExperienceRepository {
	return &ExperienceRepository{coll: s.db.Collection("experience"), logger: s.logger}
}

// Skills returns the skill repository.
func (s *Store) Skills() repositories.SkillRepository {
	return &SkillRepository{coll: s.db.Collection("skills"), logger: s.logger}
}

// Projects returns the project repository.
func (s *Store) Projects() repositories.ProjectRepository {
	return &ProjectRepository{coll: s.db.Collection("projects"), logger: s.logger}
}

// Blogs returns the blog repository.
func (s *Store) Blogs() repositories.BlogRepository {
	return &BlogRepository{coll: s.db.Collection("blogs"), logger: s.logger}
}

// Messages returns the contact message repository.
func (s *Store) Messages() repositories.MessageRepository {
	return &MessageRepository{coll: s.db.Collection("messages"), logger: s.logger}
}

// Users returns the admin account repository.
func (s *Store) Users() user.Repository {
	return &UserRepository{coll: s.db.Collection("users"), logger: s.logger}
}

// findAll returns every document sorted by creation time ascending, which
// matches the insertion order the file backend preserves naturally.
func findAll[T any](ctx context.Context, coll *mongo.Collection) ([]*T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	records := []*T{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", coll.Name(), err)
	}
	return records, nil
}

// findOne decodes the single document matching filter.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var record T
	err := coll.FindOne(ctx, filter).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	return &record, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) error {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", coll.Name(), err)
	}
	return nil
}

// replaceByID swaps the document with the given _id for doc; a miss is
// reported as ErrNotFound rather than an upsert.
func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	result, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", coll.Name(), err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", coll.Name(), err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
