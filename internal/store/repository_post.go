package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// postRepository is the SQL implementation of [PostRepository].
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost implements [PostRepository]. A zero Created is set to now.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.Created.IsZero() {
		post.Created = time.Now().UTC()
	}

	query, args, err := r.db.builder.
		Insert(postTable).
		Columns("author_id", "created", "title", "body").
		Values(post.AuthorID, post.Created, post.Title, post.Body).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.querier(ctx).QueryRowContext(ctx, query, args...).Scan(&post.PostID); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		if errors.Is(r.db.classify(err), ErrForeignKeyViolation) {
			return models.Post{}, ErrAuthorNotFound
		}
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// FindPostByID implements [PostRepository].
func (r *postRepository) FindPostByID(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectPosts().Where(sq.Eq{"p.id": postID}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.db.querier(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("error scanning post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// ListPosts implements [PostRepository].
func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	return r.list(ctx, "*postRepository.ListPosts", newestFirst(r.db.selectPosts()))
}

// FindPostsByAuthor implements [PostRepository].
func (r *postRepository) FindPostsByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	return r.list(ctx, "*postRepository.FindPostsByAuthor",
		newestFirst(r.db.selectPosts().Where(sq.Eq{"p.author_id": authorID})))
}

// UpdatePost implements [PostRepository].
func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(postTable).
		Set("title", post.Title).
		Set("body", post.Body).
		Where(sq.Eq{"id": post.PostID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error updating post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrPostNotFound)
}

// DeletePost implements [PostRepository].
func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(postTable).
		Where(sq.Eq{"id": postID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrPostNotFound)
}

func (r *postRepository) list(ctx context.Context, funcName string, builder sq.SelectBuilder) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating posts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var (
		post   models.Post
		author models.PostAuthor
	)

	err := row.Scan(
		&post.PostID,
		&post.Title,
		&post.Body,
		&post.Created,
		&post.AuthorID,
		&author.Username,
	)
	if err != nil {
		return models.Post{}, err
	}

	post.Created = post.Created.UTC()
	author.UserID = post.AuthorID
	post.Author = &author

	return post, nil
}
