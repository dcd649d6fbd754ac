package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketChat/internal/enums"
	"marketChat/internal/errs"
	"marketChat/internal/models"
	"marketChat/internal/msgs"
	"marketChat/internal/services"
)

type RestHandler struct {
	messagingService    *services.MessagingService
	conversationService *services.ConversationService
	listingService      *services.ListingService
	jwtKey              []byte
}

func NewRestHandler(
	messagingService *services.MessagingService,
	conversationService *services.ConversationService,
	listingService *services.ListingService,
	jwtKey []byte,
) *RestHandler {
	return &RestHandler{
		messagingService:    messagingService,
		conversationService: conversationService,
		listingService:      listingService,
		jwtKey:              jwtKey,
	}
}

// SendMessage godoc
// @Summary      Send a direct message
// @Description  Create a message from sender to receiver
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message  body      models.SendMessageRequest  true  "Message to send"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      422  {object}  models.Response
// @Router       /api/messages [post]
func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	var request models.SendMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	message, errors := rh.messagingService.SendMessage(&request)
	if len(errors) > 0 {
		ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMessageSentSuccessfully,
		Data:    message,
	})
}

func (rh *RestHandler) GetThread(ctx *gin.Context) {
	userA := ctx.Param("userA")
	userB := ctx.Param("userB")

	messages, errors := rh.messagingService.GetThread(userA, userB)
	if len(errors) > 0 {
		ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    messages,
	})
}

func (rh *RestHandler) GetMessagesInvolving(ctx *gin.Context) {
	userID := ctx.Param("userId")
	page := ctx.Query("page")
	size := ctx.Query("size")

	pageInt, err := strconv.Atoi(page)
	if err != nil || pageInt < 1 {
		pageInt = 1
	}

	sizeInt, err := strconv.Atoi(size)
	if err != nil || sizeInt < 1 {
		sizeInt = 10
	}

	response, errors := rh.messagingService.GetMessagesInvolving(userID, pageInt, sizeInt)
	if len(errors) > 0 {
		ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

// ListConversations godoc
// @Summary      List conversations for a user
// @Description  Derived conversation summaries, newest activity first
// @Tags         conversations
// @Produce      json
// @Param        userId  path  string  true  "Viewer user id"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /api/conversations/{userId} [get]
func (rh *RestHandler) ListConversations(ctx *gin.Context) {
	viewerID := ctx.Param("userId")

	summaries, errors := rh.conversationService.ListConversations(viewerID)
	if len(errors) > 0 {
		ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    summaries,
	})
}

func (rh *RestHandler) MarkThreadRead(ctx *gin.Context) {
	viewerID := ctx.Param("viewerId")
	partnerID := ctx.Param("partnerId")

	response, errors := rh.messagingService.MarkThreadRead(viewerID, partnerID)
	if len(errors) > 0 {
		ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgThreadMarkedRead,
		Data:    response,
	})
}

func (rh *RestHandler) GetUnreadCount(ctx *gin.Context) {
	viewerID := ctx.Param("viewerId")
	partnerID := ctx.Param("partnerId")

	response, errors := rh.messagingService.GetUnreadCount(viewerID, partnerID)
	if len(errors) > 0 {
		ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

func (rh *RestHandler) SearchMessages(ctx *gin.Context) {
	query := ctx.Query("q")

	messages, errors := rh.messagingService.SearchMessages(query)
	if len(errors) > 0 {
		ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    messages,
	})
}

func (rh *RestHandler) SearchListings(ctx *gin.Context) {
	query := ctx.Query("q")

	listings, errors := rh.listingService.SearchListings(query)
	if len(errors) > 0 {
		ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    listings,
	})
}

// SearchAll runs the global search across messages and listings. The optional
// scope query parameter narrows it to one collection.
func (rh *RestHandler) SearchAll(ctx *gin.Context) {
	query := ctx.Query("q")
	scope := ctx.DefaultQuery("scope", enums.SEARCH_SCOPE_ALL)

	response := models.SearchResponse{
		Messages: []models.Message{},
		Listings: []models.Listing{},
	}

	if scope == enums.SEARCH_SCOPE_ALL || scope == enums.SEARCH_SCOPE_MESSAGES {
		messages, errors := rh.messagingService.SearchMessages(query)
		if len(errors) > 0 {
			ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
				Success: false,
				Message: msgs.MsgOperationFailed,
				Errors:  errors,
			})
			return
		}
		response.Messages = messages
	}

	if scope == enums.SEARCH_SCOPE_ALL || scope == enums.SEARCH_SCOPE_LISTINGS {
		listings, errors := rh.listingService.SearchListings(query)
		if len(errors) > 0 {
			ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
				Success: false,
				Message: msgs.MsgOperationFailed,
				Errors:  errors,
			})
			return
		}
		response.Listings = listings
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

func (rh *RestHandler) PurgeSelfMessages(ctx *gin.Context) {
	purged, errors := rh.messagingService.PurgeSelfMessages()
	if len(errors) > 0 {
		ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    models.MarkReadResponse{UpdatedCount: purged},
	})
}

func (rh *RestHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusForErrors maps the error taxonomy onto HTTP statuses. Anything not
// recognized as a client error is treated as a store failure.
func statusForErrors(errors []error) int {
	for _, err := range errors {
		switch {
		case errs.IsValidation(err):
			return http.StatusBadRequest
		case errs.IsPolicy(err):
			return http.StatusUnprocessableEntity
		case errs.IsNotFound(err):
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}
