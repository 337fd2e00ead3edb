package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anyrite/pixelblog-be/internal/models"
)

type userDoc struct {
	ID           string `bson:"id"`
	Username     string `bson:"username"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Bio          string `bson:"bio"`
	Avatar       string `bson:"avatar"`
	CreatedAt    string `bson:"created_at"`
}

func toUserDoc(u models.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Bio:          u.Bio,
		Avatar:       u.Avatar,
		CreatedAt:    encodeTime(u.CreatedAt),
	}
}

func (d userDoc) toModel() (models.User, error) {
	createdAt, err := decodeTime(d.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Bio:          d.Bio,
		Avatar:       d.Avatar,
		CreatedAt:    createdAt,
	}, nil
}

// UserStore is the MongoDB-backed user collection.
type UserStore struct {
	col *mongo.Collection
}

// NewUserStore creates a UserStore on the "users" collection.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("users")}
}

func (s *UserStore) Insert(ctx context.Context, user models.User) error {
	_, err := s.col.InsertOne(ctx, toUserDoc(user))
	return wrapErr(err)
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var doc userDoc
	if err := s.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		return models.User{}, wrapErr(err)
	}
	return doc.toModel()
}

func (s *UserStore) GetByID(ctx context.Context, id string) (models.User, error) {
	return s.findOne(ctx, bson.M{"id": id})
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *UserStore) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{bson.M{"username": username}, bson.M{"email": email}}}
	count, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, wrapErr(err)
	}
	return count > 0, nil
}
