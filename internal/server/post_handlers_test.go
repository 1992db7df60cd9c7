package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"travelblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostEndpoint(t *testing.T) {
	app := newTestApp(t)

	t.Run("creates post and resolves new author", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{
			"title":      "我的環島旅行日記",
			"content":    "第一天從台北出發，沿著海線一路往南，沿途的風景美得讓人捨不得眨眼。",
			"topic":      "SPOT",
			"authorName": "Amy",
		})
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "文章發布成功", env.Message)

		var post models.Post
		require.NoError(t, json.Unmarshal(env.Data, &post))
		assert.Equal(t, "我的環島旅行日記", post.Title)
		assert.Equal(t, models.TopicSpot, post.Topic)
		assert.Equal(t, "Amy", post.Author.Name)
	})

	t.Run("reuses existing author", func(t *testing.T) {
		_, env := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{
			"title":      "第二篇遊記也來了",
			"content":    "第二天的行程從台中出發，走山線經過了好幾個隱藏版的老街與小吃攤。",
			"topic":      "FOOD",
			"authorName": "Amy",
		})

		var post models.Post
		require.NoError(t, json.Unmarshal(env.Data, &post))

		var first models.Post
		status, firstEnv := doJSON(t, app, http.MethodGet, "/api/posts/1", nil)
		require.Equal(t, http.StatusOK, status)
		require.NoError(t, json.Unmarshal(firstEnv.Data, &first))
		assert.Equal(t, first.AuthorID, post.AuthorID)
	})

	t.Run("title too short", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{
			"title":      "短",
			"content":    "內容本身是足夠長的，超過二十個字完全沒有問題，但標題太短了。",
			"topic":      "FOOD",
			"authorName": "Amy",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "標題至少需要5個字", env.Message)
	})

	t.Run("markup does not count toward content length", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{
			"title":      "標籤不算字數的測試",
			"content":    "<p><strong><em>短短的內容</em></strong></p>",
			"topic":      "FOOD",
			"authorName": "Amy",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "內容至少需要20個字", env.Message)
	})

	t.Run("invalid topic", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{
			"title":      "主題錯誤的文章",
			"content":    "這段內容一樣是足夠長的，超過二十個字完全沒有問題，用來測試主題。",
			"topic":      "TRAVEL",
			"authorName": "Amy",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "無效的文章類別", env.Message)
	})
}

func TestGetPostEndpoint(t *testing.T) {
	app := newTestApp(t)
	postID := createTestPost(t, app, "我的環島旅行日記", "SPOT", "Amy")

	t.Run("returns post with author and comments", func(t *testing.T) {
		_, createEnv := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/posts/%d/comments", postID), map[string]string{
				"content":       "寫得真好，下次也想去",
				"commenterName": "Bob",
			})
		require.Equal(t, "留言發布成功", createEnv.Message)

		status, env := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "成功", env.Message)

		var post models.Post
		require.NoError(t, json.Unmarshal(env.Data, &post))
		assert.Equal(t, "Amy", post.Author.Name)
		require.Len(t, post.Comments, 1)
		assert.Equal(t, "Bob", post.Comments[0].Commenter.Name)
	})

	t.Run("missing post", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodGet, "/api/posts/999", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "找不到該文章", env.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodGet, "/api/posts/abc", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "ID 格式錯誤", env.Message)
	})
}

func TestListPostsEndpoint(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 12; i++ {
		topic := "SPOT"
		author := "Amy"
		if i%2 == 0 {
			topic = "FOOD"
		}
		if i >= 9 {
			author = "Bob"
		}
		createTestPost(t, app, fmt.Sprintf("第%d篇測試遊記標題", i+1), topic, author)
	}

	t.Run("paginates with totals", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodGet, "/api/posts?page=2&pageSize=10", nil)
		require.Equal(t, http.StatusOK, status)

		var list models.PostList
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, int64(12), list.Total)
		assert.Equal(t, 2, list.Page)
		assert.Equal(t, 10, list.PageSize)
		assert.Len(t, list.Posts, 2)
	})

	t.Run("filters by topic", func(t *testing.T) {
		_, env := doJSON(t, app, http.MethodGet, "/api/posts?topic=FOOD&page=1&pageSize=100", nil)

		var list models.PostList
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, int64(6), list.Total)
		for _, p := range list.Posts {
			assert.Equal(t, models.TopicFood, p.Topic)
		}
	})

	t.Run("filters by author substring case-insensitively", func(t *testing.T) {
		_, env := doJSON(t, app, http.MethodGet, "/api/posts?author=bo&page=1&pageSize=100", nil)

		var list models.PostList
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, int64(3), list.Total)
		for _, p := range list.Posts {
			assert.Equal(t, "Bob", p.Author.Name)
		}
	})

	t.Run("unknown topic", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodGet, "/api/posts?topic=NOPE", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "無效的文章類別", env.Message)
	})

	t.Run("malformed pagination", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodGet, "/api/posts?page=abc", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "分頁參數格式錯誤", env.Message)
	})

	t.Run("defaults apply without query", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodGet, "/api/posts", nil)
		require.Equal(t, http.StatusOK, status)

		var list models.PostList
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, 1, list.Page)
		assert.Equal(t, 10, list.PageSize)
		assert.Len(t, list.Posts, 10)
	})
}

func TestUpdatePostEndpoint(t *testing.T) {
	app := newTestApp(t)
	postID := createTestPost(t, app, "我的環島旅行日記", "SPOT", "Amy")

	body := func(author string) map[string]string {
		return map[string]string{
			"title":      "更新後的旅行日記",
			"content":    "改寫過的內容，補上了第二天在台南吃到的所有小吃與巷弄裡的老屋咖啡店。",
			"topic":      "FOOD",
			"authorName": author,
		}
	}

	t.Run("wrong name is forbidden", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPut,
			fmt.Sprintf("/api/posts/%d", postID), body("Bob"))
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "名稱不正確，無法編輯文章", env.Message)

		_, getEnv := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), nil)
		var post models.Post
		require.NoError(t, json.Unmarshal(getEnv.Data, &post))
		assert.Equal(t, "我的環島旅行日記", post.Title)
	})

	t.Run("matching name updates", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPut,
			fmt.Sprintf("/api/posts/%d", postID), body("Amy"))
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "文章更新成功", env.Message)

		var post models.Post
		require.NoError(t, json.Unmarshal(env.Data, &post))
		assert.Equal(t, "更新後的旅行日記", post.Title)
		assert.Equal(t, models.TopicFood, post.Topic)
	})

	t.Run("missing post", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPut, "/api/posts/999", body("Amy"))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "找不到該文章", env.Message)
	})
}

func TestDeletePostEndpoint(t *testing.T) {
	app := newTestApp(t)
	postID := createTestPost(t, app, "我的環島旅行日記", "SPOT", "Amy")

	_, commentEnv := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/posts/%d/comments", postID), map[string]string{
			"content":       "寫得真好，下次也想去",
			"commenterName": "Bob",
		})
	require.Equal(t, "留言發布成功", commentEnv.Message)

	t.Run("wrong name is forbidden", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/posts/%d/delete", postID),
			map[string]string{"authorName": "Bob"})
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "名稱不正確，無法刪除文章", env.Message)
	})

	t.Run("matching name deletes post and comments", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/posts/%d/delete", postID),
			map[string]string{"authorName": "Amy"})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "文章刪除成功", env.Message)

		status, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), nil)
		assert.Equal(t, http.StatusNotFound, status)

		status, env = doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/posts/%d/comments", postID), nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "找不到該文章", env.Message)
	})

	t.Run("already deleted", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/posts/%d/delete", postID),
			map[string]string{"authorName": "Amy"})
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "找不到該文章", env.Message)
	})
}
