package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkhin/notekeeper/internal/logger"
	"github.com/avolkhin/notekeeper/internal/service"
	"github.com/avolkhin/notekeeper/internal/store"
	"github.com/avolkhin/notekeeper/internal/utils"
	"github.com/avolkhin/notekeeper/models"
)

// welcome is an unauthenticated liveness endpoint.
func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, ok("welcome"), http.StatusOK)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFullNameRequired),
			errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrPasswordRequired):
			log.Err(err).Msg("invalid registration data provided")
			writeFailure(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeFailure(w, http.StatusConflict, "user already exists")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeFailure(w, http.StatusInternalServerError, msgInternalError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeFailure(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Response:    ok("account created successfully"),
		User:        &registeredUser,
		AccessToken: token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrPasswordRequired):
			log.Err(err).Msg("invalid login data provided")
			writeFailure(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			writeFailure(w, http.StatusNotFound, store.ErrUserNotFound.Error())
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			writeFailure(w, http.StatusUnauthorized, service.ErrWrongPassword.Error())
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeFailure(w, http.StatusInternalServerError, msgInternalError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeFailure(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Response:    ok("login success"),
		Email:       foundUser.Email,
		AccessToken: token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		writeFailure(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	foundUser, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("user_id", userID).Msg("token refers to a missing account")
			writeFailure(w, http.StatusNotFound, store.ErrUserNotFound.Error())
			return
		default:
			log.Err(err).Int64("user_id", userID).Msg("unexpected error occurred during user lookup")
			writeFailure(w, http.StatusInternalServerError, msgInternalError)
			return
		}
	}

	// The password hash is excluded from serialization by the model.
	utils.WriteJSON(w, models.UserResponse{
		Response: ok("user found"),
		User:     &foundUser,
	}, http.StatusOK)
}
