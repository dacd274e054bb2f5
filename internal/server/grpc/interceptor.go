package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/logging"
	pb "github.com/dmitrijs2005/skillboard/internal/proto"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	tokenKey    ctxKey = "token"
	identityKey ctxKey = "identity"
)

var protectedMethods = map[string]bool{
	pb.SkillboardService_GetMyProfile_FullMethodName:       true,
	pb.SkillboardService_UpsertProfile_FullMethodName:      true,
	pb.SkillboardService_GetAvatarUploadURL_FullMethodName: true,
}

// requestIDMetadataKey is the gRPC counterpart of the X-Request-ID header.
const requestIDMetadataKey = "x-request-id"

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func tokenFromMetadata(ctx context.Context) string {
	return firstMetadata(ctx, common.AccessTokenHeaderName)
}

// loggingInterceptor tags the call with a request id and logs its outcome.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	reqID := firstMetadata(ctx, requestIDMetadataKey)
	if reqID == "" || len(reqID) > 128 {
		reqID = uuid.NewString()
	}
	ctx = logging.WithRequestID(ctx, reqID)

	resp, err := handler(ctx, req)

	code := status.Code(err)
	fields := []any{
		"method", info.FullMethod,
		"code", code.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	}
	switch code {
	case codes.OK:
		s.logger.Info(ctx, "gRPC call", fields...)
	case codes.Internal, codes.Unknown, codes.DataLoss:
		s.logger.Error(ctx, "gRPC call", fields...)
	default:
		s.logger.Warn(ctx, "gRPC call", fields...)
	}
	return resp, err
}

// accessTokenInterceptor rejects calls to protected methods that do not carry
// a decodable access_token and puts the token and its identity into the
// context for the handler.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !protectedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	token := tokenFromMetadata(ctx)
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := s.codec.Decode(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	ctx = context.WithValue(ctx, tokenKey, token)
	ctx = context.WithValue(ctx, identityKey, id)

	return handler(ctx, req)
}

func tokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey).(string)
	return t
}

func identityFromContext(ctx context.Context) *models.Identity {
	id, _ := ctx.Value(identityKey).(*models.Identity)
	return id
}
