package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/internal/repository"
	"github.com/shopright/backend/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserServiceImpl struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	kafkaReader *kafka.Reader
}

func CreateUserService(userRepo repository.UserRepository, productRepo repository.ProductRepository, kafkaReader *kafka.Reader) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		productRepo: productRepo,
		kafkaReader: kafkaReader,
	}
}

func (s *UserServiceImpl) GetUserByExternalID(ctx context.Context, externalID string) (user domain.User, err error) {
	return s.userRepo.GetUserByExternalID(ctx, externalID)
}

func (s *UserServiceImpl) AddAddress(ctx context.Context, user domain.User, req dto.AddressRequest) (addresses []domain.Address, err error) {
	// a new default unsets every other default
	if req.IsDefault {
		for i := range user.Addresses {
			user.Addresses[i].IsDefault = false
		}
	}

	user.Addresses = append(user.Addresses, domain.Address{
		ID:            primitive.NewObjectID(),
		Label:         req.Label,
		FullName:      req.FullName,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		PhoneNumber:   req.PhoneNumber,
		IsDefault:     req.IsDefault,
	})

	if err = s.userRepo.SetUserAddresses(ctx, user.ID, user.Addresses); err != nil {
		return nil, err
	}

	return user.Addresses, nil
}

func (s *UserServiceImpl) GetAddresses(ctx context.Context, user domain.User) (addresses []domain.Address, err error) {
	return user.Addresses, nil
}

func (s *UserServiceImpl) UpdateAddress(ctx context.Context, user domain.User, addressID string, req dto.UpdateAddressRequest) (addresses []domain.Address, err error) {
	id, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return nil, errs.ErrClient
	}

	idx := -1
	for i, address := range user.Addresses {
		if address.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errs.ErrNotFound
	}

	if req.IsDefault != nil && *req.IsDefault {
		for i := range user.Addresses {
			user.Addresses[i].IsDefault = false
		}
	}

	address := &user.Addresses[idx]
	if req.Label != nil {
		address.Label = *req.Label
	}
	if req.FullName != nil {
		address.FullName = *req.FullName
	}
	if req.StreetAddress != nil {
		address.StreetAddress = *req.StreetAddress
	}
	if req.City != nil {
		address.City = *req.City
	}
	if req.State != nil {
		address.State = *req.State
	}
	if req.ZipCode != nil {
		address.ZipCode = *req.ZipCode
	}
	if req.PhoneNumber != nil {
		address.PhoneNumber = *req.PhoneNumber
	}
	if req.IsDefault != nil {
		address.IsDefault = *req.IsDefault
	}

	if err = s.userRepo.SetUserAddresses(ctx, user.ID, user.Addresses); err != nil {
		return nil, err
	}

	return user.Addresses, nil
}

func (s *UserServiceImpl) DeleteAddress(ctx context.Context, user domain.User, addressID string) (addresses []domain.Address, err error) {
	id, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return nil, errs.ErrClient
	}

	remaining := make([]domain.Address, 0, len(user.Addresses))
	for _, address := range user.Addresses {
		if address.ID != id {
			remaining = append(remaining, address)
		}
	}
	user.Addresses = remaining

	if err = s.userRepo.SetUserAddresses(ctx, user.ID, user.Addresses); err != nil {
		return nil, err
	}

	return user.Addresses, nil
}

func (s *UserServiceImpl) AddToWishlist(ctx context.Context, user domain.User, req dto.WishlistRequest) (wishlist []domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return nil, errs.ErrClient
	}

	if user.InWishlist(productID) {
		return nil, errs.ErrAlreadyInWishlist
	}

	if _, err = s.productRepo.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	user.Wishlist = append(user.Wishlist, productID)

	if err = s.userRepo.SetUserWishlist(ctx, user.ID, user.Wishlist); err != nil {
		return nil, err
	}

	return s.resolveWishlist(ctx, user.Wishlist)
}

func (s *UserServiceImpl) RemoveFromWishlist(ctx context.Context, user domain.User, productID string) (wishlist []domain.Product, err error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, errs.ErrClient
	}

	if !user.InWishlist(id) {
		return nil, errs.ErrNotInWishlist
	}

	remaining := make([]primitive.ObjectID, 0, len(user.Wishlist))
	for _, wishlistID := range user.Wishlist {
		if wishlistID != id {
			remaining = append(remaining, wishlistID)
		}
	}
	user.Wishlist = remaining

	if err = s.userRepo.SetUserWishlist(ctx, user.ID, user.Wishlist); err != nil {
		return nil, err
	}

	return s.resolveWishlist(ctx, user.Wishlist)
}

func (s *UserServiceImpl) GetWishlist(ctx context.Context, user domain.User) (wishlist []domain.Product, err error) {
	return s.resolveWishlist(ctx, user.Wishlist)
}

// resolveWishlist loads the products behind the stored ids, dropping entries
// whose product has been deleted since it was wishlisted.
func (s *UserServiceImpl) resolveWishlist(ctx context.Context, ids []primitive.ObjectID) ([]domain.Product, error) {
	wishlist := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		product, err := s.productRepo.GetProductByID(ctx, id)
		if err == errs.ErrProductNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		wishlist = append(wishlist, product)
	}

	return wishlist, nil
}

// SyncUser mirrors an identity-provider user into the local directory.
func (s *UserServiceImpl) SyncUser(ctx context.Context, event dto.IdentityUserEvent) (err error) {
	name := strings.TrimSpace(event.FirstName + " " + event.LastName)
	if name == "" {
		name = "User"
	}

	return s.userRepo.UpsertUser(ctx, domain.User{
		ExternalID: event.ExternalID,
		Email:      event.Email,
		Name:       name,
		ImageURL:   event.ImageURL,
	})
}

func (s *UserServiceImpl) RemoveUser(ctx context.Context, externalID string) (err error) {
	return s.userRepo.DeleteUserByExternalID(ctx, externalID)
}

// ConsumeIdentityEvents follows the identity provider's event stream and keeps
// the user directory in sync. Malformed events are logged and skipped.
func (s *UserServiceImpl) ConsumeIdentityEvents() {
	for {
		msg, err := s.kafkaReader.ReadMessage(context.Background())
		if err != nil {
			log.Error().Err(err).Str("component", "ConsumeIdentityEvents").Msg("")
			continue
		}

		var receivedMsg dto.KafkaMessage
		if err := json.Unmarshal(msg.Value, &receivedMsg); err != nil {
			log.Error().Err(err).Str("component", "ConsumeIdentityEvents").Msg("")
			continue
		}

		dataBytes, err := json.Marshal(receivedMsg.Data)
		if err != nil {
			log.Error().Err(err).Str("component", "ConsumeIdentityEvents").Msg("")
			continue
		}

		switch receivedMsg.EventType {
		case "user_created", "user_updated":
			var event dto.IdentityUserEvent
			if err := json.Unmarshal(dataBytes, &event); err != nil {
				log.Error().Err(err).Str("component", "ConsumeIdentityEvents").Msg("")
				continue
			}

			if err := s.SyncUser(context.Background(), event); err != nil {
				log.Error().Err(err).Str("component", "ConsumeIdentityEvents").Msg("")
			}
		case "user_deleted":
			var event dto.IdentityUserDeletedEvent
			if err := json.Unmarshal(dataBytes, &event); err != nil {
				log.Error().Err(err).Str("component", "ConsumeIdentityEvents").Msg("")
				continue
			}

			if err := s.RemoveUser(context.Background(), event.ExternalID); err != nil {
				log.Error().Err(err).Str("component", "ConsumeIdentityEvents").Msg("")
			}
		default:
			log.Warn().Str("component", "ConsumeIdentityEvents").Str("event_type", receivedMsg.EventType).Msg("Unknown event type")
		}
	}
}
