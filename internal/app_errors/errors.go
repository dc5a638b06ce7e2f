package app_errors

import "errors"

var ErrUserExists = errors.New("user with this username or email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrIncorrectPassword = errors.New("incorrect password")
var ErrUnauthenticated = errors.New("unauthorized request")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenReused = errors.New("refresh token is expired or already used")
var ErrVideoNotFound = errors.New("video not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrTweetNotFound = errors.New("tweet not found")
var ErrPlaylistNotFound = errors.New("playlist not found")
var ErrChannelNotFound = errors.New("channel not found")
var ErrNotOwner = errors.New("only the owner is allowed to modify this resource")
var ErrSelfSubscription = errors.New("cannot subscribe to your own channel")
var ErrAvatarRequired = errors.New("avatar file is required")
var ErrNotMedia = errors.New("unsupported media type")
var ErrFileSize = errors.New("file size error")
