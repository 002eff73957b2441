package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/connecta/identity-service/config"
	"github.com/connecta/identity-service/internal/cache"
	"github.com/connecta/identity-service/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules are auto-wired from these singletons.

var (
	cfg           *config.Config
	logger        *logrus.Logger
	pgPool        *pgxpool.Pool
	redisClient   *redis.Client
	identityCache cache.IdentityCache
	tokenCodec    *helpers.TokenCodec
	rabbitPub     *helpers.RabbitPublisher
)

func SetConfig(c *config.Config)          { cfg = c }
func GetConfig() *config.Config           { return cfg }
func SetLogger(l *logrus.Logger)          { logger = l }
func GetLogger() *logrus.Logger           { return logger }
func SetPGPool(p *pgxpool.Pool)           { pgPool = p }
func GetPGPool() *pgxpool.Pool            { return pgPool }
func SetRedis(r *redis.Client)            { redisClient = r }
func GetRedis() *redis.Client             { return redisClient }
func SetCache(c cache.IdentityCache)      { identityCache = c }
func GetCache() cache.IdentityCache       { return identityCache }
func SetCodec(c *helpers.TokenCodec)      { tokenCodec = c }
func GetCodec() *helpers.TokenCodec       { return tokenCodec }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
