package service

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/model"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func newPostTestEnv() (*fakePostRepo, *fakeCategoryRepo, *fakeLocationRepo, *fakeUserRepo, PostService) {
	posts := newFakePostRepo()
	categories := newFakeCategoryRepo()
	locations := newFakeLocationRepo()
	users := newFakeUserRepo()
	svc := NewPostService(posts, categories, locations, users)
	return posts, categories, locations, users, svc
}

func publishedPost(id, authorID uint64, pubDate time.Time) *model.Post {
	return &model.Post{
		ID:          id,
		AuthorID:    authorID,
		Title:       fmt.Sprintf("post %d", id),
		Text:        "text",
		PubDate:     pubDate,
		IsPublished: true,
	}
}

func TestListVisibleFiltersHiddenPosts(t *testing.T) {
	posts, categories, _, _, svc := newPostTestEnv()
	now := time.Now().UTC()

	hiddenCategory := categories.add(&model.Category{Title: "Archive", Slug: "archive", IsPublished: false})
	openCategory := categories.add(&model.Category{Title: "Travel", Slug: "travel", IsPublished: true})

	visible := publishedPost(1, 1, now.Add(-time.Hour))
	visible.CategoryID = &openCategory.ID
	visible.Category = openCategory
	posts.add(visible)

	draft := publishedPost(2, 1, now.Add(-time.Hour))
	draft.IsPublished = false
	posts.add(draft)

	scheduled := publishedPost(3, 1, now.Add(time.Hour))
	posts.add(scheduled)

	inHidden := publishedPost(4, 1, now.Add(-time.Hour))
	inHidden.CategoryID = &hiddenCategory.ID
	inHidden.Category = hiddenCategory
	posts.add(inHidden)

	uncategorized := publishedPost(5, 1, now.Add(-2*time.Hour))
	posts.add(uncategorized)

	page, err := svc.ListVisible(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if len(page.List) != 2 {
		t.Fatalf("want 2 visible posts, got %d", len(page.List))
	}
	if page.List[0].ID != 1 || page.List[1].ID != 5 {
		t.Errorf("want posts [1 5] newest first, got [%d %d]", page.List[0].ID, page.List[1].ID)
	}
	if page.HasMore {
		t.Errorf("want HasMore false for a single short page")
	}
}

func TestListVisiblePagination(t *testing.T) {
	posts, _, _, _, svc := newPostTestEnv()
	now := time.Now().UTC()

	for i := 1; i <= 15; i++ {
		posts.add(publishedPost(uint64(i), 1, now.Add(-time.Duration(i)*time.Minute)))
	}

	page1, err := svc.ListVisible(context.Background(), 1)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(page1.List) != 10 {
		t.Errorf("page 1: want 10 items, got %d", len(page1.List))
	}
	if !page1.HasMore {
		t.Errorf("page 1: want HasMore true")
	}
	if page1.List[0].ID != 1 {
		t.Errorf("page 1: want newest post first, got id %d", page1.List[0].ID)
	}

	page2, err := svc.ListVisible(context.Background(), 2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(page2.List) != 5 {
		t.Errorf("page 2: want 5 items, got %d", len(page2.List))
	}
	if page2.HasMore {
		t.Errorf("page 2: want HasMore false")
	}
	if page2.List[0].ID != 11 {
		t.Errorf("page 2: want id 11 first, got %d", page2.List[0].ID)
	}

	page3, err := svc.ListVisible(context.Background(), 3)
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if len(page3.List) != 0 {
		t.Errorf("page 3: want empty page, got %d items", len(page3.List))
	}

	// Page numbers below 1 clamp to the first page.
	pageZero, err := svc.ListVisible(context.Background(), 0)
	if err != nil {
		t.Fatalf("page 0: %v", err)
	}
	if pageZero.Page != 1 || len(pageZero.List) != 10 {
		t.Errorf("page 0: want clamp to page 1 with 10 items, got page %d with %d", pageZero.Page, len(pageZero.List))
	}
}

func TestListVisibleByCategory(t *testing.T) {
	posts, categories, _, _, svc := newPostTestEnv()
	now := time.Now().UTC()

	travel := categories.add(&model.Category{Title: "Travel", Slug: "travel", IsPublished: true})
	categories.add(&model.Category{Title: "Secret", Slug: "secret", IsPublished: false})

	inTravel := publishedPost(1, 1, now.Add(-time.Hour))
	inTravel.CategoryID = &travel.ID
	inTravel.Category = travel
	posts.add(inTravel)
	posts.add(publishedPost(2, 1, now.Add(-time.Hour)))

	page, err := svc.ListVisibleByCategory(context.Background(), "travel", 1)
	if err != nil {
		t.Fatalf("ListVisibleByCategory: %v", err)
	}
	if page.Category == nil || page.Category.Slug != "travel" {
		t.Fatalf("want travel category on page, got %+v", page.Category)
	}
	if len(page.List) != 1 || page.List[0].ID != 1 {
		t.Errorf("want only post 1, got %d items", len(page.List))
	}

	// An unpublished category is missing, not empty.
	if _, err = svc.ListVisibleByCategory(context.Background(), "secret", 1); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("unpublished slug: want ErrCategoryNotFound, got %v", err)
	}
	if _, err = svc.ListVisibleByCategory(context.Background(), "missing", 1); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("unknown slug: want ErrCategoryNotFound, got %v", err)
	}
}

func TestListByAuthorIncludesDrafts(t *testing.T) {
	posts, _, _, users, svc := newPostTestEnv()
	now := time.Now().UTC()

	author := users.add(&model.User{Username: "ana", FirstName: "Ana"})

	posts.add(publishedPost(1, author.ID, now.Add(-time.Hour)))

	draft := publishedPost(2, author.ID, now.Add(-time.Hour))
	draft.IsPublished = false
	posts.add(draft)

	scheduled := publishedPost(3, author.ID, now.Add(time.Hour))
	posts.add(scheduled)

	posts.add(publishedPost(4, author.ID+1, now.Add(-time.Hour)))

	page, err := svc.ListByAuthor(context.Background(), "ana", 1)
	if err != nil {
		t.Fatalf("ListByAuthor: %v", err)
	}
	if page.Profile == nil || page.Profile.Username != "ana" {
		t.Fatalf("want ana's profile on page, got %+v", page.Profile)
	}
	if len(page.List) != 3 {
		t.Errorf("want drafts and scheduled posts included, got %d items", len(page.List))
	}

	if _, err = svc.ListByAuthor(context.Background(), "nobody", 1); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown username: want ErrUserNotFound, got %v", err)
	}
}

func TestGetDetailAuthorExemption(t *testing.T) {
	posts, _, _, _, svc := newPostTestEnv()
	now := time.Now().UTC()

	draft := publishedPost(7, 1, now.Add(-time.Hour))
	draft.IsPublished = false
	posts.add(draft)

	// The author still sees their own draft.
	detail, err := svc.GetDetail(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("author view: %v", err)
	}
	if detail.Post.ID != 7 {
		t.Errorf("want post 7, got %d", detail.Post.ID)
	}
	if detail.Form == nil {
		t.Errorf("want an empty comment form on the detail page")
	}

	// Anyone else gets NotFound, not Forbidden.
	if _, err = svc.GetDetail(context.Background(), 2, 7); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("other viewer: want ErrPostNotFound, got %v", err)
	}
	if _, err = svc.GetDetail(context.Background(), 0, 7); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("anonymous viewer: want ErrPostNotFound, got %v", err)
	}

	if _, err = svc.GetDetail(context.Background(), 1, 99); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("missing post: want ErrPostNotFound, got %v", err)
	}
}

func TestCreatePostStampsAuthor(t *testing.T) {
	posts, _, _, _, svc := newPostTestEnv()

	id, err := svc.CreatePost(context.Background(), 3, &dto.PostFormDTO{
		Title: "hello",
		Text:  "body",
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	stored := posts.posts[id]
	if stored == nil {
		t.Fatalf("post %d not stored", id)
	}
	if stored.AuthorID != 3 {
		t.Errorf("want author 3 from viewer, got %d", stored.AuthorID)
	}
	if !stored.IsPublished {
		t.Errorf("want published by default")
	}
	if stored.PubDate.IsZero() {
		t.Errorf("want pub date defaulted to now")
	}
}

func TestCreatePostRejectsBadReferences(t *testing.T) {
	_, _, _, _, svc := newPostTestEnv()

	badCategory := uint64(42)
	_, err := svc.CreatePost(context.Background(), 1, &dto.PostFormDTO{
		Title:      "hello",
		Text:       "body",
		CategoryID: &badCategory,
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("unknown category: want ErrCategoryNotFound, got %v", err)
	}

	badLocation := uint64(42)
	_, err = svc.CreatePost(context.Background(), 1, &dto.PostFormDTO{
		Title:      "hello",
		Text:       "body",
		LocationID: &badLocation,
	})
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("unknown location: want ErrLocationNotFound, got %v", err)
	}
}

func TestUpdatePostOwnerGuard(t *testing.T) {
	posts, _, _, _, svc := newPostTestEnv()
	now := time.Now().UTC()

	posts.add(publishedPost(5, 1, now.Add(-time.Hour)))

	form := &dto.PostFormDTO{Title: "edited", Text: "body"}

	if err := svc.UpdatePost(context.Background(), 2, 5, form); !errors.Is(err, ErrOwnerMismatch) {
		t.Fatalf("other viewer: want ErrOwnerMismatch, got %v", err)
	}
	if posts.posts[5].Title != "post 5" {
		t.Errorf("denied edit must not change the post, title is %q", posts.posts[5].Title)
	}

	if err := svc.UpdatePost(context.Background(), 1, 5, form); err != nil {
		t.Fatalf("owner edit: %v", err)
	}
	if posts.posts[5].Title != "edited" {
		t.Errorf("want title edited, got %q", posts.posts[5].Title)
	}

	if err := svc.UpdatePost(context.Background(), 1, 99, form); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("missing post: want ErrPostNotFound, got %v", err)
	}
}

func TestDeletePostOwnerGuard(t *testing.T) {
	posts, _, _, _, svc := newPostTestEnv()
	now := time.Now().UTC()

	posts.add(publishedPost(5, 1, now.Add(-time.Hour)))

	if err := svc.DeletePost(context.Background(), 2, 5); !errors.Is(err, ErrOwnerMismatch) {
		t.Fatalf("other viewer: want ErrOwnerMismatch, got %v", err)
	}
	if posts.posts[5].IsDeleted {
		t.Errorf("denied delete must not remove the post")
	}

	if err := svc.DeletePost(context.Background(), 1, 5); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if !posts.posts[5].IsDeleted {
		t.Errorf("want post soft-deleted")
	}

	// A deleted post behaves like a missing one.
	if _, err := svc.GetDetail(context.Background(), 1, 5); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("deleted post: want ErrPostNotFound, got %v", err)
	}
}

func TestCommentCountCarriedToDTO(t *testing.T) {
	posts, _, _, _, svc := newPostTestEnv()
	now := time.Now().UTC()

	post := publishedPost(1, 1, now.Add(-time.Hour))
	post.CommentCount = 4
	posts.add(post)

	page, err := svc.ListVisible(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if page.List[0].CommentCount != 4 {
		t.Errorf("want comment count 4, got %d", page.List[0].CommentCount)
	}
}
