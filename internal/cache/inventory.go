package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	MicropostKeyPrefix = "micropost:%d"
	UserCountKey       = "users:count"
)

const (
	UserTTL      = 5 * time.Minute
	MicropostTTL = 10 * time.Minute
	UserCountTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func MicropostKey(id uint) string {
	return fmt.Sprintf(MicropostKeyPrefix, id)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, UserCountKey)
}

func InvalidateMicropost(ctx context.Context, id uint) {
	Invalidate(ctx, MicropostKey(id))
}
