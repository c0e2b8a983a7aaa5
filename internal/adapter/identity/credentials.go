package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	userDomain "agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type credential struct {
	UserID       string          `bson:"userId"`
	Email        string          `bson:"email"`
	PasswordHash string          `bson:"passwordHash"`
	Role         userDomain.Role `bson:"role"`
	CreatedAt    time.Time       `bson:"createdAt"`
}

// Credentials stores bcrypt hashes in their own collection.
type Credentials struct {
	coll *mongo.Collection
	cost int
}

func NewCredentials(db *mongo.Database) *Credentials {
	return &Credentials{coll: db.Collection(docstore.Credentials), cost: bcrypt.DefaultCost}
}

func normalizeEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }

func (c *Credentials) CreateAccount(ctx context.Context, userID, email, password string, role userDomain.Role) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return err
	}
	_, err = c.coll.InsertOne(ctx, credential{
		UserID:       userID,
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return userDomain.ErrEmailTaken
	}
	return err
}

// Authenticate does not tell an unknown email apart from a wrong password.
func (c *Credentials) Authenticate(ctx context.Context, email, password string) (userDomain.Principal, error) {
	var cred credential
	err := c.coll.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&cred)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return userDomain.Principal{}, userDomain.ErrInvalidCredentials
		}
		return userDomain.Principal{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return userDomain.Principal{}, userDomain.ErrInvalidCredentials
	}
	return userDomain.Principal{UserID: cred.UserID, Role: cred.Role}, nil
}
