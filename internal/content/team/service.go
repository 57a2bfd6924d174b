package team

import (
	"context"
	"log/slog"

	"github.com/argusintel/argus/internal/platform/pagecache"
	"github.com/argusintel/argus/internal/platform/validate"
)

type Service struct {
	repo   Repository
	cache  pagecache.Invalidator
	logger *slog.Logger
}

func NewService(repo Repository, cache pagecache.Invalidator, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

/*
ListMembers returns the team roster in display order.

Parameters:
  - context: context.Context
  - publishedOnly: bool (Hide unlisted members when true)

Returns:
  - []*Member: All matching members ordered by sort position
  - error: Storage or execution errors
*/
func (service *Service) ListMembers(context context.Context, publishedOnly bool) ([]*Member, error) {
	return service.repo.ListMembers(context, publishedOnly)
}

/*
GetMember fetches a single team member by their UUID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Member: The hydrated domain entity
  - error: Not-found error if no match exists
*/
func (service *Service) GetMember(context context.Context, id string) (*Member, error) {
	return service.repo.GetMemberByID(context, id)
}

/*
CreateMember adds a person to the team roster.

Description: Validates the profile, including every social link URL,
before persisting.

Parameters:
  - context: context.Context
  - member: *Member (The entity to be persisted)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateMember(context context.Context, member *Member) error {
	if err := validateMember(member); err != nil {
		return err
	}

	if err := service.repo.CreateMember(context, member); err != nil {
		return err
	}

	service.logger.Info("team_member_created", slog.String("member_id", member.ID), slog.String("name", member.Name))
	service.cache.Invalidate(context, member.AffectedPaths()...)
	return nil
}

/*
UpdateMember overwrites an existing roster entry.

Parameters:
  - context: context.Context
  - id: string (UUID of the record to overwrite)
  - member: *Member (Replacement attributes)

Returns:
  - error: Not-found, validation, or persistence errors
*/
func (service *Service) UpdateMember(context context.Context, id string, member *Member) error {
	member.ID = id
	if err := validateMember(member); err != nil {
		return err
	}

	if err := service.repo.UpdateMember(context, member); err != nil {
		return err
	}

	service.logger.Info("team_member_updated", slog.String("member_id", member.ID))
	service.cache.Invalidate(context, member.AffectedPaths()...)
	return nil
}

/*
DeleteMember removes a person from the roster permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Not-found or persistence errors
*/
func (service *Service) DeleteMember(context context.Context, id string) error {
	if err := service.repo.DeleteMember(context, id); err != nil {
		return err
	}

	service.logger.Warn("team_member_deleted", slog.String("member_id", id))
	service.cache.Invalidate(context, (&Member{}).AffectedPaths()...)
	return nil
}

func validateMember(member *Member) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, member.Name).MaxLen(FieldName, member.Name, 200)
	validator.Required(FieldRoleTitle, member.RoleTitle).MaxLen(FieldRoleTitle, member.RoleTitle, 200)

	if member.PhotoURL != nil {
		validator.URL(FieldPhotoURL, *member.PhotoURL)
	}
	for _, link := range member.SocialLinks {
		validator.URL(FieldSocialLinks, link)
	}

	return validator.Err()
}
