package service

import (
	"context"
	"testing"
	"time"

	"prolink/internal/models"
	"prolink/internal/repository"

	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint) (*models.Post, error)
	listByAuthorFn func(context.Context, uint) ([]*models.Post, error)
	listFeedFn     func(context.Context, int, int) ([]*models.Post, error)
	countFeedFn    func(context.Context) (int64, error)
	listInRangeFn  func(context.Context, *time.Time, *time.Time) ([]*models.Post, error)
	updateFn       func(context.Context, *models.Post) error
	deleteFn       func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, userID)
}
func (s *postRepoStub) ListFeed(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFeedFn(ctx, limit, offset)
}
func (s *postRepoStub) CountFeed(ctx context.Context) (int64, error) {
	return s.countFeedFn(ctx)
}
func (s *postRepoStub) ListInRange(ctx context.Context, start, end *time.Time) ([]*models.Post, error) {
	return s.listInRangeFn(ctx, start, end)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1}, nil
		},
		listByAuthorFn: func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		listFeedFn:     func(_ context.Context, _, _ int) ([]*models.Post, error) { return nil, nil },
		countFeedFn:    func(_ context.Context) (int64, error) { return 0, nil },
		listInRangeFn:  func(_ context.Context, _, _ *time.Time) ([]*models.Post, error) { return nil, nil },
		updateFn:       func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn          func(context.Context, *models.Comment) error
	getByIDFn         func(context.Context, uint) (*models.Comment, error)
	listByPostFn      func(context.Context, uint, int, int) ([]*models.Comment, error)
	countByPostFn     func(context.Context, uint) (int64, error)
	countByPostIDsFn  func(context.Context, []uint) (map[uint]int64, error)
	commenterCountsFn func(context.Context, []uint) ([]repository.CommenterCount, error)
	updateFn          func(context.Context, *models.Comment) error
	deleteFn          func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	return s.countByPostIDsFn(ctx, postIDs)
}
func (s *commentRepoStub) CommenterCounts(ctx context.Context, postIDs []uint) ([]repository.CommenterCount, error) {
	return s.commenterCountsFn(ctx, postIDs)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1, PostID: 1, Post: &models.Post{ID: 1, UserID: 1}}, nil
		},
		listByPostFn:      func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
		countByPostFn:     func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countByPostIDsFn:  func(_ context.Context, _ []uint) (map[uint]int64, error) { return map[uint]int64{}, nil },
		commenterCountsFn: func(_ context.Context, _ []uint) ([]repository.CommenterCount, error) { return nil, nil },
		updateFn:          func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
	}
}

// reactionRepoStub is a stub for repository.ReactionRepository.
type reactionRepoStub struct {
	getByUserAndPostFn func(context.Context, uint, uint) (*models.Reaction, error)
	createFn           func(context.Context, *models.Reaction) error
	updateStatusFn     func(context.Context, uint, string) error
	tallyByPostIDsFn   func(context.Context, []uint) (map[uint]map[string]int64, error)
}

func (s *reactionRepoStub) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Reaction, error) {
	return s.getByUserAndPostFn(ctx, userID, postID)
}
func (s *reactionRepoStub) Create(ctx context.Context, reaction *models.Reaction) error {
	return s.createFn(ctx, reaction)
}
func (s *reactionRepoStub) UpdateStatus(ctx context.Context, id uint, status string) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *reactionRepoStub) TallyByPostIDs(ctx context.Context, postIDs []uint) (map[uint]map[string]int64, error) {
	return s.tallyByPostIDsFn(ctx, postIDs)
}

func noopReactionRepo() *reactionRepoStub {
	return &reactionRepoStub{
		getByUserAndPostFn: func(_ context.Context, _, _ uint) (*models.Reaction, error) { return nil, nil },
		createFn:           func(_ context.Context, _ *models.Reaction) error { return nil },
		updateStatusFn:     func(_ context.Context, _ uint, _ string) error { return nil },
		tallyByPostIDsFn: func(_ context.Context, _ []uint) (map[uint]map[string]int64, error) {
			return map[uint]map[string]int64{}, nil
		},
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn               func(context.Context, *models.User) error
	getByIDFn              func(context.Context, uint) (*models.User, error)
	getByIDsFn             func(context.Context, []uint) ([]*models.User, error)
	getByEmailFn           func(context.Context, string) (*models.User, error)
	getByUsernameFn        func(context.Context, string) (*models.User, error)
	getByUsernameOrEmailFn func(context.Context, string) (*models.User, error)
	updateFn               func(context.Context, *models.User) error
	deleteFn               func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]*models.User, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	return s.getByUsernameOrEmailFn(ctx, identifier)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "user"}, nil
		},
		getByIDsFn:             func(_ context.Context, _ []uint) ([]*models.User, error) { return nil, nil },
		getByEmailFn:           func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn:        func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameOrEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:               func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:               func(_ context.Context, _ uint) error { return nil },
	}
}

// experienceRepoStub is a stub for repository.ExperienceRepository.
type experienceRepoStub struct {
	createFn     func(context.Context, *models.Experience) error
	getByIDFn    func(context.Context, uint) (*models.Experience, error)
	listByUserFn func(context.Context, uint) ([]*models.Experience, error)
	updateFn     func(context.Context, *models.Experience) error
	deleteFn     func(context.Context, uint) error
}

func (s *experienceRepoStub) Create(ctx context.Context, experience *models.Experience) error {
	return s.createFn(ctx, experience)
}
func (s *experienceRepoStub) GetByID(ctx context.Context, id uint) (*models.Experience, error) {
	return s.getByIDFn(ctx, id)
}
func (s *experienceRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.Experience, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *experienceRepoStub) Update(ctx context.Context, experience *models.Experience) error {
	return s.updateFn(ctx, experience)
}
func (s *experienceRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopExperienceRepo() *experienceRepoStub {
	return &experienceRepoStub{
		createFn: func(_ context.Context, _ *models.Experience) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Experience, error) {
			return &models.Experience{ID: id, UserID: 1}, nil
		},
		listByUserFn: func(_ context.Context, _ uint) ([]*models.Experience, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Experience) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// skillRepoStub is a stub for repository.SkillRepository.
type skillRepoStub struct {
	createSkillFn     func(context.Context, *models.Skill) error
	getSkillByIDFn    func(context.Context, uint) (*models.Skill, error)
	listSkillsFn      func(context.Context) ([]*models.Skill, error)
	createUserSkillFn func(context.Context, *models.UserSkill) error
	getUserSkillFn    func(context.Context, uint, uint) (*models.UserSkill, error)
	listByUserFn      func(context.Context, uint) ([]*models.UserSkill, error)
	listBySkillFn     func(context.Context, uint) ([]*models.UserSkill, error)
}

func (s *skillRepoStub) CreateSkill(ctx context.Context, skill *models.Skill) error {
	return s.createSkillFn(ctx, skill)
}
func (s *skillRepoStub) GetSkillByID(ctx context.Context, id uint) (*models.Skill, error) {
	return s.getSkillByIDFn(ctx, id)
}
func (s *skillRepoStub) ListSkills(ctx context.Context) ([]*models.Skill, error) {
	return s.listSkillsFn(ctx)
}
func (s *skillRepoStub) CreateUserSkill(ctx context.Context, userSkill *models.UserSkill) error {
	return s.createUserSkillFn(ctx, userSkill)
}
func (s *skillRepoStub) GetUserSkill(ctx context.Context, userID, skillID uint) (*models.UserSkill, error) {
	return s.getUserSkillFn(ctx, userID, skillID)
}
func (s *skillRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.UserSkill, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *skillRepoStub) ListBySkill(ctx context.Context, skillID uint) ([]*models.UserSkill, error) {
	return s.listBySkillFn(ctx, skillID)
}

func noopSkillRepo() *skillRepoStub {
	return &skillRepoStub{
		createSkillFn: func(_ context.Context, _ *models.Skill) error { return nil },
		getSkillByIDFn: func(_ context.Context, id uint) (*models.Skill, error) {
			return &models.Skill{ID: id, Name: "Go"}, nil
		},
		listSkillsFn:      func(_ context.Context) ([]*models.Skill, error) { return nil, nil },
		createUserSkillFn: func(_ context.Context, _ *models.UserSkill) error { return nil },
		getUserSkillFn:    func(_ context.Context, _, _ uint) (*models.UserSkill, error) { return nil, nil },
		listByUserFn:      func(_ context.Context, _ uint) ([]*models.UserSkill, error) { return nil, nil },
		listBySkillFn:     func(_ context.Context, _ uint) ([]*models.UserSkill, error) { return nil, nil },
	}
}

// assertStatusError asserts err is an AppError carrying the given status code.
func assertStatusError(t *testing.T, err error, statusCode int) *models.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T: %v", err, err)
	require.Equal(t, statusCode, appErr.StatusCode)
	return appErr
}
