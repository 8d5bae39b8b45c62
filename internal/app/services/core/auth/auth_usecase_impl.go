package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"labtrack-service/internal/app/config"
	"labtrack-service/internal/app/contracts"
	"labtrack-service/internal/app/models"
	"labtrack-service/internal/pkg/constvars"
	"labtrack-service/internal/pkg/dto/requests"
	"labtrack-service/internal/pkg/dto/responses"
	"labtrack-service/internal/pkg/exceptions"
	"labtrack-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	SessionService contracts.SessionService
	RedisRepo      contracts.RedisRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	sessionService contracts.SessionService,
	redisRepo contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			SessionService: sessionService,
			RedisRepo:      redisRepo,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

// Login is a two-step exchange. Without an OTP the request generates and
// stores a one-time code; with an OTP it validates the code and opens a
// session. OTP delivery to the phone is out of band.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneKey, request.Phone),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	role, err := models.ParseUserRole(request.Role)
	if err != nil {
		return nil, exceptions.ErrInvalidRoleType(err)
	}

	otpKey := fmt.Sprintf(constvars.RedisLoginOTPKeyFormat, request.Phone)

	if request.OTP == "" {
		otp, err := utils.GenerateOTP(constvars.LoginOTPLength)
		if err != nil {
			return nil, exceptions.ErrServerProcess(err)
		}
		err = uc.RedisRepo.Set(ctx, otpKey, otp, constvars.LoginOTPTTLInMinutes*time.Minute)
		if err != nil {
			return nil, err
		}
		return &responses.Login{OTPSent: true}, nil
	}

	storedOTP, err := uc.RedisRepo.Get(ctx, otpKey)
	if err != nil {
		return nil, err
	}
	if storedOTP != fmt.Sprintf("%q", request.OTP) {
		return nil, exceptions.ErrOTPInvalid(nil)
	}
	if err := uc.RedisRepo.Delete(ctx, otpKey); err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	expiry := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID: sessionID,
		Phone:     request.Phone,
		Role:      role,
		ExpiresAt: time.Now().Add(expiry),
	}
	if err := uc.SessionService.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingRoleKey, string(role)),
	)
	return &responses.Login{Token: token, Role: string(role)}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}
