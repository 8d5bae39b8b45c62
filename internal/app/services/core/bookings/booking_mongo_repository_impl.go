package bookings

import (
	"context"

	"labtrack-service/internal/app/contracts"
	"labtrack-service/internal/app/models"
	"labtrack-service/internal/pkg/constvars"
	"labtrack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *BookingMongoRepository) Insert(ctx context.Context, booking *models.Booking) error {
	_, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *BookingMongoRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.Collection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *BookingMongoRepository) FindByStatus(ctx context.Context, statuses ...models.BookingStatus) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"status": bson.M{"$in": statuses}})
}

func (r *BookingMongoRepository) FindByPatientPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"patientPhone": phone})
}

func (r *BookingMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) Update(ctx context.Context, booking *models.Booking) error {
	filter := bson.M{"orderId": booking.OrderID}
	update := bson.M{"$set": booking}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *BookingMongoRepository) CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (r *BookingMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}
