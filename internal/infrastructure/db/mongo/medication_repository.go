package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

const collectionMedications = "medications"

type MedicationRepository struct {
	col *mongo.Collection
}

func NewMedicationRepository(db *mongo.Database) *MedicationRepository {
	return &MedicationRepository{col: db.Collection(collectionMedications)}
}

type medicationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Name      string             `bson:"name"`
	Dosage    string             `bson:"dosage"`
	Frequency string             `bson:"frequency"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d medicationDoc) toDomain() *domain.Medication {
	return &domain.Medication{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Name:      d.Name,
		Dosage:    d.Dosage,
		Frequency: d.Frequency,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *MedicationRepository) Create(ctx context.Context, m *domain.Medication) (*domain.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := medicationDoc{
		UserID:    m.UserID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Frequency: m.Frequency,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert medication: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MedicationRepository) ListByUser(ctx context.Context, userID string, skip, limit int64) ([]*domain.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find()
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer cur.Close(ctx)

	medications := make([]*domain.Medication, 0)
	for cur.Next(ctx) {
		var doc medicationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode medication: %w", err)
		}
		medications = append(medications, doc.toDomain())
	}
	return medications, cur.Err()
}

// FindByIDAndUser filters on both the id and user_id so a medication owned by
// another user is indistinguishable from a missing one.
func (r *MedicationRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*domain.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var doc medicationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMedicationNotFound
		}
		return nil, fmt.Errorf("find medication: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MedicationRepository) Update(ctx context.Context, id string, update domain.MedicationUpdate, updatedAt time.Time) (*domain.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	set := bson.M{"updated_at": updatedAt}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Dosage != nil {
		set["dosage"] = *update.Dosage
	}
	if update.Frequency != nil {
		set["frequency"] = *update.Frequency
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc medicationDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMedicationNotFound
		}
		return nil, fmt.Errorf("update medication: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MedicationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMedicationNotFound
	}
	return nil
}

// EnsureIndexes creates the index backing the per-user listing.
func (r *MedicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
