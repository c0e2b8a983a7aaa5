package mongodb

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// mapNotFound swaps the driver's no-documents error for the domain sentinel.
func mapNotFound(err error, sentinel error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return sentinel
	}
	return err
}
