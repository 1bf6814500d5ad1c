// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
)

type fakeAuth struct {
	registerFn func(ctx context.Context, form models.RegisterForm) (models.User, error)
	loginFn    func(ctx context.Context, username, password string) error
	token      string
	username   string
}

func (f *fakeAuth) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	return f.registerFn(ctx, form)
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) error {
	return f.loginFn(ctx, username, password)
}

func (f *fakeAuth) RefreshToken(context.Context) error { return nil }
func (f *fakeAuth) Logout(context.Context) error       { return nil }
func (f *fakeAuth) Token() string                      { return f.token }
func (f *fakeAuth) Username() string                   { return f.username }

type fakePosts struct {
	listFn   func(ctx context.Context) ([]models.Post, error)
	getFn    func(ctx context.Context, postID int64) (models.Post, error)
	createFn func(ctx context.Context, form models.PostForm) (models.Post, error)
}

func (f *fakePosts) ListPosts(ctx context.Context) ([]models.Post, error) {
	return f.listFn(ctx)
}

func (f *fakePosts) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return f.getFn(ctx, postID)
}

func (f *fakePosts) CreatePost(ctx context.Context, form models.PostForm) (models.Post, error) {
	return f.createFn(ctx, form)
}

type fakeAppInfo struct{}

func (fakeAppInfo) GetServerVersion(context.Context) (string, error) { return "1.0.0", nil }

func newFakeServices(auth *fakeAuth, posts *fakePosts) *service.ClientServices {
	return &service.ClientServices{
		AuthService:    auth,
		PostService:    posts,
		AppInfoService: fakeAppInfo{},
	}
}
