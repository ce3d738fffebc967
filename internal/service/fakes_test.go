package service

import (
	"Chronicle/internal/model"
	"context"
	"sort"
	"time"
)

// In-memory repository fakes backing the service tests. The list fakes
// mirror the SQL visibility scope through the shared PostVisibleAt
// predicate so both decision points stay in sync.

type fakePostRepo struct {
	posts  map[uint64]*model.Post
	nextID uint64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*model.Post), nextID: 1}
}

func (f *fakePostRepo) add(post *model.Post) *model.Post {
	if post.ID == 0 {
		post.ID = f.nextID
	}
	if post.ID >= f.nextID {
		f.nextID = post.ID + 1
	}
	f.posts[post.ID] = post
	return post
}

func (f *fakePostRepo) sorted() []*model.Post {
	out := make([]*model.Post, 0, len(f.posts))
	for _, p := range f.posts {
		if !p.IsDeleted {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PubDate.Equal(out[j].PubDate) {
			return out[i].PubDate.After(out[j].PubDate)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func pageSlice(posts []*model.Post, limit, offset int) []*model.Post {
	if offset >= len(posts) {
		return nil
	}
	posts = posts[offset:]
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	f.add(post)
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok || post.IsDeleted {
		return nil, nil
	}
	return post, nil
}

func (f *fakePostRepo) GetPostWithComments(ctx context.Context, id uint64) (*model.Post, error) {
	return f.GetPost(ctx, id)
}

func (f *fakePostRepo) ListVisible(_ context.Context, now time.Time, limit, offset int) ([]*model.Post, error) {
	var visible []*model.Post
	for _, p := range f.sorted() {
		if PostVisibleAt(p, now) {
			visible = append(visible, p)
		}
	}
	return pageSlice(visible, limit, offset), nil
}

func (f *fakePostRepo) ListVisibleByCategory(_ context.Context, categoryID uint64, now time.Time, limit, offset int) ([]*model.Post, error) {
	var visible []*model.Post
	for _, p := range f.sorted() {
		if PostVisibleAt(p, now) && p.CategoryID != nil && *p.CategoryID == categoryID {
			visible = append(visible, p)
		}
	}
	return pageSlice(visible, limit, offset), nil
}

func (f *fakePostRepo) ListByAuthor(_ context.Context, authorID uint64, limit, offset int) ([]*model.Post, error) {
	var owned []*model.Post
	for _, p := range f.sorted() {
		if p.AuthorID == authorID {
			owned = append(owned, p)
		}
	}
	return pageSlice(owned, limit, offset), nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, post *model.Post) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, id uint64) error {
	if post, ok := f.posts[id]; ok {
		post.IsDeleted = true
	}
	return nil
}

func (f *fakePostRepo) PurgeDeletedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var purged int64
	for id, post := range f.posts {
		if post.IsDeleted && post.UpdatedAt.Before(cutoff) {
			delete(f.posts, id)
			purged++
		}
	}
	return purged, nil
}

type fakeCategoryRepo struct {
	categories map[uint64]*model.Category
	nextID     uint64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uint64]*model.Category), nextID: 1}
}

func (f *fakeCategoryRepo) add(category *model.Category) *model.Category {
	if category.ID == 0 {
		category.ID = f.nextID
	}
	if category.ID >= f.nextID {
		f.nextID = category.ID + 1
	}
	f.categories[category.ID] = category
	return category
}

func (f *fakeCategoryRepo) CreateCategory(_ context.Context, category *model.Category) error {
	f.add(category)
	return nil
}

func (f *fakeCategoryRepo) GetCategory(_ context.Context, id uint64) (*model.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return category, nil
}

func (f *fakeCategoryRepo) GetPublishedBySlug(_ context.Context, slug string) (*model.Category, error) {
	for _, category := range f.categories {
		if category.Slug == slug && category.IsPublished {
			return category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) ListPublished(_ context.Context) ([]*model.Category, error) {
	var out []*model.Category
	for _, category := range f.categories {
		if category.IsPublished {
			out = append(out, category)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

type fakeLocationRepo struct {
	locations map[uint64]*model.Location
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[uint64]*model.Location)}
}

func (f *fakeLocationRepo) GetLocation(_ context.Context, id uint64) (*model.Location, error) {
	location, ok := f.locations[id]
	if !ok {
		return nil, nil
	}
	return location, nil
}

func (f *fakeLocationRepo) ListLocations(_ context.Context) ([]*model.Location, error) {
	var out []*model.Location
	for _, location := range f.locations {
		out = append(out, location)
	}
	return out, nil
}

type fakeUserRepo struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User), nextID: 1}
}

func (f *fakeUserRepo) add(user *model.User) *model.User {
	if user.ID == 0 {
		user.ID = f.nextID
	}
	if user.ID >= f.nextID {
		f.nextID = user.ID + 1
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeCommentRepo struct {
	comments map[uint64]*model.Comment
	nextID   uint64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint64]*model.Comment), nextID: 1}
}

func (f *fakeCommentRepo) add(comment *model.Comment) *model.Comment {
	if comment.ID == 0 {
		comment.ID = f.nextID
	}
	if comment.ID >= f.nextID {
		f.nextID = comment.ID + 1
	}
	f.comments[comment.ID] = comment
	return comment
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	f.add(comment)
	return nil
}

func (f *fakeCommentRepo) GetComment(_ context.Context, id uint64) (*model.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	return comment, nil
}

func (f *fakeCommentRepo) UpdateComment(_ context.Context, comment *model.Comment) error {
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) DeleteComment(_ context.Context, id uint64) error {
	delete(f.comments, id)
	return nil
}
