package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"community-http-service/internal/domain/models"
	"community-http-service/internal/infrastructure/config"
)

// 值班表缓存键和有效期
const (
	dutyRosterKey = "community:duty_roster"
	dutyRosterTTL = 30 * time.Second
)

// InterfaceRedisService 定义Redis缓存服务接口
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	Ping() error
	CacheDutyRoster(staff []models.Staff) error
	GetDutyRoster() ([]models.Staff, error)
	InvalidateDutyRoster() error
}

// RedisService 基于Redis的缓存服务
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService 创建一个新的Redis服务
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// 1 Set 以JSON形式写入键值
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get 读取键值并反序列化到dest
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete 删除键
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 4 Ping 测试Redis连接
func (s *RedisService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}

// 5 CacheDutyRoster 缓存员工值班表
func (s *RedisService) CacheDutyRoster(staff []models.Staff) error {
	return s.Set(dutyRosterKey, staff, dutyRosterTTL)
}

// 6 GetDutyRoster 读取缓存的员工值班表，缓存未命中返回redis.Nil
func (s *RedisService) GetDutyRoster() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.Get(dutyRosterKey, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// 7 InvalidateDutyRoster 清除值班表缓存，员工数据变更后调用
func (s *RedisService) InvalidateDutyRoster() error {
	return s.Delete(dutyRosterKey)
}
