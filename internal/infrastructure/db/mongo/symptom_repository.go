package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

const collectionSymptoms = "symptoms"

type SymptomRepository struct {
	col *mongo.Collection
}

func NewSymptomRepository(db *mongo.Database) *SymptomRepository {
	return &SymptomRepository{col: db.Collection(collectionSymptoms)}
}

type symptomDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Name      string             `bson:"name"`
	Details   string             `bson:"details"`
	Severity  int                `bson:"severity"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (d symptomDoc) toDomain() *domain.Symptom {
	return &domain.Symptom{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Name:      d.Name,
		Details:   d.Details,
		Severity:  d.Severity,
		Timestamp: d.Timestamp,
	}
}

func (r *SymptomRepository) Create(ctx context.Context, s *domain.Symptom) (*domain.Symptom, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := symptomDoc{
		UserID:    s.UserID,
		Name:      s.Name,
		Details:   s.Details,
		Severity:  s.Severity,
		Timestamp: s.Timestamp,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert symptom: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// ListByUser returns symptoms for a user, optionally bounded by an inclusive
// timestamp window.
func (r *SymptomRepository) ListByUser(ctx context.Context, filter ports.SymptomFilter) ([]*domain.Symptom, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": filter.UserID}

	window := bson.M{}
	if !filter.From.IsZero() {
		window["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		window["$lte"] = filter.To
	}
	if len(window) > 0 {
		query["timestamp"] = window
	}

	opts := options.Find()
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list symptoms: %w", err)
	}
	defer cur.Close(ctx)

	symptoms := make([]*domain.Symptom, 0)
	for cur.Next(ctx) {
		var doc symptomDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode symptom: %w", err)
		}
		symptoms = append(symptoms, doc.toDomain())
	}
	return symptoms, cur.Err()
}

// EnsureIndexes creates the indexes backing the per-user windowed queries.
func (r *SymptomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	return err
}
