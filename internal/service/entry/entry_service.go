package entry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/domain/dto"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
	"github.com/shutterclub/photocontest/internal/pkg/logger"
	"github.com/shutterclub/photocontest/internal/pkg/storage"
	"github.com/shutterclub/photocontest/internal/pkg/store"
)

type Service struct {
	store store.Store
	blobs storage.Store
}

func NewEntryService(store store.Store, blobs storage.Store) *Service {
	return &Service{store: store, blobs: blobs}
}

// UploadPhoto stores the image, inserts the photo row and links its
// categories. The contest upload window and the per-user entry limit are
// checked before any byte is written.
func (svc *Service) UploadPhoto(ctx context.Context, profile *domain.Profile, input *dto.UploadPhotoInput) (*domain.Photo, error) {
	contest, err := svc.uploadableContest(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	if err := validateFile(input.File); err != nil {
		return nil, err
	}

	imageURL, err := svc.blobs.Save(ctx, storage.EntryKey(profile.ID, input.File.Filename), input.File.Reader)
	if err != nil {
		return nil, fmt.Errorf("blobs.Save: %w", err)
	}

	photo := &domain.Photo{
		ID:          uuid.New(),
		ContestID:   contest.ID,
		UserID:      profile.ID,
		Title:       input.Title,
		Description: input.Description,
		AuthorName:  profile.Username,
		ImageURL:    imageURL,
		FileSize:    input.File.Size,
		Status:      domain.EntryStatusPublic,
	}
	if err := svc.store.InsertPhoto(ctx, photo); err != nil {
		return nil, fmt.Errorf("store.InsertPhoto: %w", err)
	}

	if err := svc.store.LinkPhotoCategories(ctx, photo.ID, input.CategoryIDs); err != nil {
		return nil, fmt.Errorf("store.LinkPhotoCategories: %w", err)
	}

	logger.Infof(ctx, "uploaded photo %s for user %s", photo.ID, profile.ID)

	return photo, nil
}

// UploadSeries stores 4-6 images as one entry; the first image is the cover.
func (svc *Service) UploadSeries(ctx context.Context, profile *domain.Profile, input *dto.UploadSeriesInput) (*domain.Series, error) {
	if len(input.Files) < constants.SeriesMinImages || len(input.Files) > constants.SeriesMaxImages {
		return nil, constants.ErrBadSeriesSize
	}

	contest, err := svc.uploadableContest(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	for _, file := range input.Files {
		if err := validateFile(file); err != nil {
			return nil, err
		}
	}

	seriesID := uuid.New()
	images := make([]*domain.SeriesImage, 0, len(input.Files))
	for i, file := range input.Files {
		imageURL, err := svc.blobs.Save(ctx, storage.EntryKey(profile.ID, file.Filename), file.Reader)
		if err != nil {
			return nil, fmt.Errorf("blobs.Save, image-%d: %w", i, err)
		}
		images = append(images, &domain.SeriesImage{SeriesID: seriesID, ImageURL: imageURL, OrderIdx: i})
	}

	series := &domain.Series{
		ID:            seriesID,
		ContestID:     contest.ID,
		UserID:        profile.ID,
		Title:         input.Title,
		Description:   input.Description,
		AuthorName:    profile.Username,
		CoverImageURL: images[0].ImageURL,
		ImageCount:    len(images),
		Status:        domain.EntryStatusPublic,
	}
	if err := svc.store.InsertSeries(ctx, series, images); err != nil {
		return nil, fmt.Errorf("store.InsertSeries: %w", err)
	}

	if err := svc.store.LinkSeriesCategories(ctx, series.ID, input.CategoryIDs); err != nil {
		return nil, fmt.Errorf("store.LinkSeriesCategories: %w", err)
	}

	logger.Infof(ctx, "uploaded series %s (%d images) for user %s", series.ID, series.ImageCount, profile.ID)

	return series, nil
}

func (svc *Service) uploadableContest(ctx context.Context, userID uuid.UUID) (*domain.Contest, error) {
	contest, err := svc.store.GetCurrentContest(ctx)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrNoActiveContest
		}
		return nil, fmt.Errorf("store.GetCurrentContest: %w", err)
	}

	now := time.Now()
	if now.Before(contest.UploadStartAt) {
		return nil, constants.ErrUploadNotStarted
	}
	if now.After(contest.UploadEndAt) {
		return nil, constants.ErrUploadEnded
	}

	count, err := svc.store.CountUserEntries(ctx, contest.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("store.CountUserEntries: %w", err)
	}
	if count >= int64(contest.MaxEntriesPerUser) {
		return nil, constants.ErrUploadLimitReached
	}

	return contest, nil
}

func validateFile(file dto.UploadFile) error {
	if file.Size > constants.MaxUploadSizeBytes {
		return constants.ErrFileTooLarge
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return constants.ErrNotAnImage
	}
	return nil
}

// MyWorks lists the caller's non-deleted entries of both variants with like
// and comment counts, newest first.
func (svc *Service) MyWorks(ctx context.Context, userID uuid.UUID) ([]domain.EntryCard, error) {
	photos, err := svc.store.ListUserPhotos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("store.ListUserPhotos: %w", err)
	}

	series, err := svc.store.ListUserSeries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("store.ListUserSeries: %w", err)
	}

	cards := make([]domain.EntryCard, 0, len(photos)+len(series))
	entryIDs := make([]uuid.UUID, 0, len(photos)+len(series))
	for _, p := range photos {
		cards = append(cards, p.Card())
		entryIDs = append(entryIDs, p.ID)
	}
	for _, sr := range series {
		cards = append(cards, sr.Card())
		entryIDs = append(entryIDs, sr.ID)
	}

	if err := svc.fillCounts(ctx, cards, entryIDs); err != nil {
		return nil, err
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].CreatedAt.After(cards[j].CreatedAt)
	})

	return cards, nil
}

func (svc *Service) fillCounts(ctx context.Context, cards []domain.EntryCard, entryIDs []uuid.UUID) error {
	likeCounts, err := svc.store.CountLikesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return fmt.Errorf("store.CountLikesByEntryIDs: %w", err)
	}
	commentCounts, err := svc.store.CountCommentsByEntryIDs(ctx, entryIDs)
	if err != nil {
		return fmt.Errorf("store.CountCommentsByEntryIDs: %w", err)
	}

	likesMap := make(map[uuid.UUID]int64, len(likeCounts))
	for _, lc := range likeCounts {
		likesMap[lc.EntryID] = lc.Count
	}
	commentsMap := make(map[uuid.UUID]int64, len(commentCounts))
	for _, cc := range commentCounts {
		commentsMap[cc.EntryID] = cc.Count
	}

	for i := range cards {
		cards[i].LikeCount = likesMap[cards[i].ID]
		cards[i].CommentCount = commentsMap[cards[i].ID]
	}

	return nil
}

// Detail resolves either variant by id. viewerID may be uuid.Nil for
// anonymous visitors.
func (svc *Service) Detail(ctx context.Context, id, viewerID uuid.UUID) (*domain.EntryDetail, error) {
	detail := new(domain.EntryDetail)

	var ownerID uuid.UUID

	photo, err := svc.store.GetPhotoByID(ctx, id)
	switch {
	case err == nil:
		detail.EntryCard = photo.Card()
		detail.EntryCard.ImageURL = photo.ImageURL
		ownerID = photo.UserID

		categories, err := svc.store.ListPhotoCategoriesByPhotoIDs(ctx, []uuid.UUID{id})
		if err != nil {
			return nil, fmt.Errorf("store.ListPhotoCategoriesByPhotoIDs: %w", err)
		}
		for _, c := range categories {
			detail.Categories = append(detail.Categories, c.CategoryName)
		}

	case errors.Is(err, constants.ErrDBNotFound):
		series, err := svc.store.GetSeriesByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("store.GetSeriesByID: %w", err)
		}
		detail.EntryCard = series.Card()
		ownerID = series.UserID

		images, err := svc.store.ListSeriesImages(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("store.ListSeriesImages: %w", err)
		}
		detail.Images = images

		categories, err := svc.store.ListSeriesCategoriesBySeriesIDs(ctx, []uuid.UUID{id})
		if err != nil {
			return nil, fmt.Errorf("store.ListSeriesCategoriesBySeriesIDs: %w", err)
		}
		for _, c := range categories {
			detail.Categories = append(detail.Categories, c.CategoryName)
		}

	default:
		return nil, fmt.Errorf("store.GetPhotoByID: %w", err)
	}

	// A removed account leaves the entry visible without an author block.
	author, err := svc.store.GetProfileByID(ctx, ownerID)
	switch {
	case err == nil:
		detail.Author = author
	case !errors.Is(err, constants.ErrDBNotFound):
		return nil, fmt.Errorf("store.GetProfileByID: %w", err)
	}

	likeCount, err := svc.store.CountLikes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.CountLikes: %w", err)
	}
	detail.LikeCount = likeCount

	if viewerID != uuid.Nil {
		liked, err := svc.store.HasLiked(ctx, id, viewerID)
		if err != nil {
			return nil, fmt.Errorf("store.HasLiked: %w", err)
		}
		detail.Liked = liked
	}

	return detail, nil
}

// Delete soft-deletes the caller's entry of either variant.
func (svc *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	deleted, err := svc.store.SoftDeletePhoto(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("store.SoftDeletePhoto: %w", err)
	}
	if deleted {
		return nil
	}

	deleted, err = svc.store.SoftDeleteSeries(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("store.SoftDeleteSeries: %w", err)
	}
	if !deleted {
		return constants.ErrDBNotFound
	}

	return nil
}

func (svc *Service) Like(ctx context.Context, entryID, userID uuid.UUID) error {
	if err := svc.store.InsertLike(ctx, entryID, userID); err != nil {
		return fmt.Errorf("store.InsertLike: %w", err)
	}
	return nil
}

func (svc *Service) Unlike(ctx context.Context, entryID, userID uuid.UUID) error {
	if err := svc.store.DeleteLike(ctx, entryID, userID); err != nil {
		return fmt.Errorf("store.DeleteLike: %w", err)
	}
	return nil
}

func (svc *Service) AddComment(ctx context.Context, entryID, userID uuid.UUID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return constants.ErrEmptyComment
	}

	comment := &domain.Comment{EntryID: entryID, UserID: userID, Content: content}
	if err := svc.store.InsertComment(ctx, comment); err != nil {
		return fmt.Errorf("store.InsertComment: %w", err)
	}

	return nil
}

func (svc *Service) ListComments(ctx context.Context, entryID uuid.UUID) ([]*domain.CommentView, error) {
	comments, err := svc.store.ListCommentsByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("store.ListCommentsByEntryID: %w", err)
	}

	return comments, nil
}
