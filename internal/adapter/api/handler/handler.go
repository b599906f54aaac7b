package handler

import (
	"campuslink/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	postHandler         *PostHandler
	commentHandler      *CommentHandler
	chatHandler         *ChatHandler
	confessionHandler   *ConfessionHandler
	listingHandler      *ListingHandler
	notificationHandler *NotificationHandler
	adminHandler        *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	postUseCase *usecase.PostUseCase,
	commentUseCase *usecase.CommentUseCase,
	chatUseCase *usecase.ChatUseCase,
	confessionUseCase *usecase.ConfessionUseCase,
	listingUseCase *usecase.ListingUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase, postUseCase)
	postHandler = NewPostHandler(postUseCase)
	commentHandler = NewCommentHandler(commentUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	confessionHandler = NewConfessionHandler(confessionUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetPostHandler() *PostHandler {
	return postHandler
}

func GetCommentHandler() *CommentHandler {
	return commentHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetConfessionHandler() *ConfessionHandler {
	return confessionHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
