package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	transactor     store.Transactor
	validator      validators.Validator

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, transactor store.Transactor, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		transactor:     transactor,
		validator:      validator,
		logger:         logger,
	}
}

func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepository.ListPosts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing posts")
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return posts, nil
}

func (s *postService) ListPostsByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.FindUserByID(ctx, authorID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.Err(err).Int64("author_id", authorID).Msg("error looking up author")
		return nil, fmt.Errorf("error looking up author: %w", err)
	}

	posts, err := s.postRepository.FindPostsByAuthor(ctx, authorID)
	if err != nil {
		log.Err(err).Int64("author_id", authorID).Msg("error listing posts of author")
		return nil, fmt.Errorf("error listing posts of author: %w", err)
	}

	return posts, nil
}

func (s *postService) GetPost(ctx context.Context, postID int64, checkAuthor bool) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := s.postRepository.FindPostByID(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("error getting post")
		return models.Post{}, fmt.Errorf("error getting post: %w", err)
	}

	if checkAuthor {
		identityID, ok := utils.GetUserIDFromContext(ctx)
		if !ok || !post.IsOwnedBy(identityID) {
			log.Warn().Int64("post_id", postID).Int64("identity", identityID).Msg("access to foreign post denied")
			return models.Post{}, ErrForbidden
		}
	}

	return post, nil
}

func (s *postService) CreatePost(ctx context.Context, request models.PostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	authorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.Post{}, ErrNoIdentity
	}

	if err := s.validator.Validate(ctx, request, validators.FieldTitle); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.postRepository.CreatePost(ctx, models.Post{
			Title:    *request.Title,
			Body:     deref(request.Body),
			AuthorID: authorID,
		})
		if err != nil {
			return err
		}

		post, err = s.postRepository.FindPostByID(ctx, created.PostID)
		return err
	})
	if err != nil {
		log.Err(err).Int64("author_id", authorID).Msg("error creating post")
		return models.Post{}, fmt.Errorf("error creating post: %w", err)
	}

	log.Info().Int64("post_id", post.PostID).Msg("post created")
	return post, nil
}

// UpdatePost overwrites title and body of a post owned by the identity. The
// author never changes.
func (s *postService) UpdatePost(ctx context.Context, postID int64, request models.PostRequest) (models.Post, error) {
	post, err := s.GetPost(ctx, postID, true)
	if err != nil {
		return models.Post{}, err
	}

	if err = s.validator.Validate(ctx, request, validators.FieldOptionalTitle); err != nil {
		return models.Post{}, err
	}

	if request.Title != nil {
		post.Title = *request.Title
	}
	if request.Body != nil {
		post.Body = *request.Body
	}

	if err = s.postRepository.UpdatePost(ctx, post); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return models.Post{}, ErrPostNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("post_id", postID).Msg("error updating post")
		return models.Post{}, fmt.Errorf("error updating post: %w", err)
	}

	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, postID int64) error {
	if _, err := s.GetPost(ctx, postID, true); err != nil {
		return err
	}

	if err := s.postRepository.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return ErrPostNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("post_id", postID).Msg("error deleting post")
		return fmt.Errorf("error deleting post: %w", err)
	}

	return nil
}
