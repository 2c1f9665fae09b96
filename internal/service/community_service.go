package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"gorm.io/gorm"
)

type CommunityService struct {
	rosterRepo  repository.RosterRepository
	commentRepo repository.CommentRepository
}

func NewCommunityService(rosterRepo repository.RosterRepository, commentRepo repository.CommentRepository) *CommunityService {
	return &CommunityService{
		rosterRepo:  rosterRepo,
		commentRepo: commentRepo,
	}
}

func (s *CommunityService) GetPublicRosters(ctx context.Context, page repository.PageRequest) (*repository.Page[*domain.Roster], error) {
	return s.rosterRepo.FindPublic(ctx, page)
}

func (s *CommunityService) GetPopularRosters(ctx context.Context, page repository.PageRequest) (*repository.Page[*domain.Roster], error) {
	return s.rosterRepo.FindByPopularity(ctx, page)
}

// GetChampionshipRosters lists public rosters that matched a catalog lineup.
func (s *CommunityService) GetChampionshipRosters(ctx context.Context, page repository.PageRequest) (*repository.Page[*domain.Roster], error) {
	public := true
	championship := true
	return s.rosterRepo.Search(ctx, repository.RosterSearchCondition{
		IsPublic:       &public,
		IsChampionship: &championship,
	}, page)
}

func (s *CommunityService) GetComments(ctx context.Context, rosterID uuid.UUID, page repository.PageRequest) (*repository.Page[*domain.Comment], error) {
	return s.commentRepo.GetByRosterID(ctx, rosterID, page)
}

func (s *CommunityService) CreateComment(ctx context.Context, rosterID uuid.UUID, user *domain.User, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, domain.ErrInvalidInput
	}

	roster, err := s.rosterRepo.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRosterNotFound
		}
		return nil, err
	}

	comment := &domain.Comment{
		ID:               uuid.New(),
		RosterID:         rosterID,
		UserID:           user.ID,
		UserName:         user.DisplayName,
		UserProfileImage: user.ProfileImage,
		Content:          content,
		CreatedAt:        time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	roster.CommentCount++
	if err := s.rosterRepo.Update(ctx, roster); err != nil {
		log.Printf("ERROR [community.CreateComment] failed to bump comment count on %s: %v", rosterID, err)
	}

	return comment, nil
}

func (s *CommunityService) DeleteComment(ctx context.Context, rosterID, commentID uuid.UUID, user *domain.User) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if !comment.IsOwnedBy(user.ID) && !user.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	roster, err := s.rosterRepo.GetByID(ctx, rosterID)
	if err == nil && roster.CommentCount > 0 {
		roster.CommentCount--
		if err := s.rosterRepo.Update(ctx, roster); err != nil {
			log.Printf("ERROR [community.DeleteComment] failed to drop comment count on %s: %v", rosterID, err)
		}
	}

	return nil
}
