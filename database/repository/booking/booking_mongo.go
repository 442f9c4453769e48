package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/config"
	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the query indexes plus the partial unique index that
// guarantees at most one active (pending or booked) reservation per doctor
// per slot start. Cancelled, rejected and completed bookings fall outside the
// partial filter, so a freed slot can be rebooked.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "slotStart", Value: 1}}},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "slotStart", Value: -1}}},
		{
			Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "slotStart", Value: 1}},
			Options: options.Index().
				SetName("unique_active_slot").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": []string{models.BookingStatusPending, models.BookingStatusBooked}},
				}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document. A duplicate-key error from the
// unique_active_slot index is reported as ErrSlotTaken.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// ListByDoctorBetween returns the doctor's bookings with slotStart in
// [start, end) whose status is in the given set, ordered by slot start.
func (r *MongoBookingRepo) ListByDoctorBetween(doctorID string, start, end time.Time, statuses []string) ([]models.Booking, error) {
	filter := bson.M{
		"doctorId":  doctorID,
		"slotStart": bson.M{"$gte": start, "$lt": end},
		"status":    bson.M{"$in": statuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "slotStart", Value: 1}})
	return r.list(filter, opts)
}

// ListByPatient returns all bookings made by a patient, most recent first.
func (r *MongoBookingRepo) ListByPatient(patientID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "slotStart", Value: -1}})
	return r.list(bson.M{"patientId": patientID}, opts)
}

// ListByDoctor returns all bookings held against a doctor, most recent first.
func (r *MongoBookingRepo) ListByDoctor(doctorID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "slotStart", Value: -1}})
	return r.list(bson.M{"doctorId": doctorID}, opts)
}

func (r *MongoBookingRepo) list(filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// UpdateStatus sets a booking's status (and optional reason) and returns the
// updated document.
func (r *MongoBookingRepo) UpdateStatus(id, status, reason string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"status": status, "updatedAt": time.Now()}
	if reason != "" {
		set["reason"] = reason
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status for booking %s: %w", id, err)
	}
	return &booking, nil
}

// MarkCompletedBefore flips booked bookings whose slotEnd has passed to
// completed. Used by the daily completion sweeper.
func (r *MongoBookingRepo) MarkCompletedBefore(cutoff time.Time) (int64, error) {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":  models.BookingStatusBooked,
		"slotEnd": bson.M{"$lt": cutoff},
	}
	update := bson.M{"$set": bson.M{
		"status":    models.BookingStatusCompleted,
		"updatedAt": time.Now(),
	}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to mark bookings completed: %w", err)
	}
	return result.ModifiedCount, nil
}
