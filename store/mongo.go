package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tipsybean/tipsybean-backend-go/models"
)

// MongoStore is the durable scope: users, profiles, carts, orders and
// products, one document per record.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) CreateUser(ctx context.Context, user models.User) error {
	_, err := s.db.Collection("users").InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *MongoStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *MongoStore) CountUsers(ctx context.Context) (int64, error) {
	return s.db.Collection("users").CountDocuments(ctx, bson.M{})
}

func (s *MongoStore) GetProfile(ctx context.Context, email string) (models.Profile, error) {
	var profile models.Profile
	err := s.db.Collection("profiles").FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return models.Profile{}, ErrNotFound
	}
	return profile, err
}

func (s *MongoStore) UpsertProfile(ctx context.Context, profile models.Profile) error {
	_, err := s.db.Collection("profiles").ReplaceOne(
		ctx,
		bson.M{"email": profile.Email},
		profile,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) GetCart(ctx context.Context, email string) (models.Cart, error) {
	var cart models.Cart
	err := s.db.Collection("carts").FindOne(ctx, bson.M{"email": email}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		// Missing cart reads as an empty cart.
		return models.Cart{Email: email, Items: []models.CartItem{}}, nil
	}
	return cart, err
}

// AddItem increments the quantity of an existing line, or pushes a new
// line when the item is not in the cart yet. The push is guarded by an
// items.itemId miss so two concurrent first-adds of the same item cannot
// produce two lines; the loser of that race matches nothing and retries
// the increment.
func (s *MongoStore) AddItem(ctx context.Context, email string, item models.CartItem) error {
	collection := s.db.Collection("carts")

	for attempt := 0; attempt < 2; attempt++ {
		result, err := collection.UpdateOne(
			ctx,
			bson.M{"email": email, "items.itemId": item.ItemID},
			bson.M{
				"$inc": bson.M{"items.$.quantity": item.Quantity},
				"$set": bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			return err
		}
		if result.MatchedCount > 0 {
			return nil
		}

		result, err = collection.UpdateOne(
			ctx,
			bson.M{"email": email, "items.itemId": bson.M{"$ne": item.ItemID}},
			bson.M{
				"$push": bson.M{"items": item},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// A concurrent writer created the cart first; retry against it.
				continue
			}
			return err
		}
		if result.MatchedCount > 0 || result.UpsertedCount > 0 {
			return nil
		}
		// The line appeared between the two updates; retry the increment.
	}
	return errors.New("cart add did not settle after retry")
}

func (s *MongoStore) SetItemQuantity(ctx context.Context, email, itemID string, quantity int) error {
	update := bson.M{
		"$set": bson.M{
			"items.$[elem].quantity": quantity,
			"updatedAt":              time.Now(),
		},
	}

	arrayFilters := options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"elem.itemId": itemID},
		},
	}

	_, err := s.db.Collection("carts").UpdateOne(
		ctx,
		bson.M{"email": email},
		update,
		options.Update().SetArrayFilters(arrayFilters),
	)
	return err
}

func (s *MongoStore) RemoveItem(ctx context.Context, email, itemID string) error {
	_, err := s.db.Collection("carts").UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{
			"$pull": bson.M{"items": bson.M{"itemId": itemID}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	return err
}

func (s *MongoStore) ClearCart(ctx context.Context, email string) error {
	_, err := s.db.Collection("carts").UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"items": []models.CartItem{}, "updatedAt": time.Now()}},
	)
	return err
}

func (s *MongoStore) InsertOrder(ctx context.Context, order models.Order) error {
	_, err := s.db.Collection("orders").InsertOne(ctx, order)
	return err
}

func (s *MongoStore) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	err := s.db.Collection("orders").FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, ErrNotFound
	}
	return order, err
}

func (s *MongoStore) ListOrders(ctx context.Context, email string, status models.OrderStatus) ([]models.Order, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := s.db.Collection("orders").Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus overwrites status in place; nothing else on an order
// is mutable after creation.
func (s *MongoStore) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	result, err := s.db.Collection("orders").UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) ListProducts(ctx context.Context, query string) ([]models.Product, error) {
	filter := bson.M{}
	if query != "" {
		filter["name"] = bson.M{"$regex": query, "$options": "i"}
	}

	cursor, err := s.db.Collection("products").Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoStore) InsertProduct(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	_, err := s.db.Collection("products").InsertOne(ctx, product)
	return err
}
