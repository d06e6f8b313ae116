package repositories

import (
	"context"
	"log"
	"time"

	"github.com/Suyogg2003/Employee-task-manager/domain"

	"github.com/gocql/gocql"
)

type NotificationRepo struct {
	session *gocql.Session
	logger  *log.Logger
}

// NewNotificationRepo connects to Cassandra and bootstraps the
// notifications keyspace and table.
func NewNotificationRepo(host string, logger *log.Logger) (*NotificationRepo, error) {
	cluster := gocql.NewCluster(host)
	cluster.Keyspace = "system"
	cluster.Consistency = gocql.Quorum

	session, err := cluster.CreateSession()
	if err != nil {
		logger.Printf("Failed to connect to Cassandra: %v\n", err)
		return nil, err
	}

	if err := ensureKeyspaceExists(session); err != nil {
		session.Close()
		return nil, err
	}
	session.Close()

	cluster.Keyspace = "notifications"
	session, err = cluster.CreateSession()
	if err != nil {
		logger.Printf("Failed to connect to notifications keyspace: %v\n", err)
		return nil, err
	}

	if err := ensureTableExists(session); err != nil {
		session.Close()
		return nil, err
	}

	logger.Println("Connected to Cassandra with keyspace notifications")
	return &NotificationRepo{session: session, logger: logger}, nil
}

func (nr *NotificationRepo) Close() {
	nr.session.Close()
}

func ensureKeyspaceExists(session *gocql.Session) error {
	query := `
	CREATE KEYSPACE IF NOT EXISTS notifications
	WITH replication = {
		'class': 'SimpleStrategy',
		'replication_factor': 1
	};`
	return session.Query(query).Exec()
}

func ensureTableExists(session *gocql.Session) error {
	query := `
	CREATE TABLE IF NOT EXISTS notifications (
		id UUID,
		user_id TEXT,
		message TEXT,
		created_at TIMESTAMP,
		is_read BOOLEAN,
		PRIMARY KEY (user_id, created_at)
	) WITH CLUSTERING ORDER BY (created_at DESC);`
	return session.Query(query).Exec()
}

func (nr *NotificationRepo) Create(ctx context.Context, notification *domain.Notification) error {
	return nr.session.Query(
		"INSERT INTO notifications (id, user_id, message, created_at, is_read) VALUES (?, ?, ?, ?, ?)",
		gocql.TimeUUID(), notification.UserID, notification.Message, notification.CreatedAt, notification.IsRead,
	).WithContext(ctx).Exec()
}

func (nr *NotificationRepo) GetAllByUserID(ctx context.Context, userID string) ([]domain.Notification, error) {
	iter := nr.session.Query(
		"SELECT id, user_id, message, created_at, is_read FROM notifications WHERE user_id = ?",
		userID,
	).WithContext(ctx).Iter()

	var notifications []domain.Notification
	var n domain.Notification
	for iter.Scan(&n.ID, &n.UserID, &n.Message, &n.CreatedAt, &n.IsRead) {
		notifications = append(notifications, n)
	}
	if err := iter.Close(); err != nil {
		nr.logger.Println(err)
		return nil, err
	}
	return notifications, nil
}

func (nr *NotificationRepo) MarkAllAsRead(ctx context.Context, userID string) error {
	iter := nr.session.Query(
		"SELECT created_at FROM notifications WHERE user_id = ?",
		userID,
	).WithContext(ctx).Iter()

	var createdAt time.Time
	for iter.Scan(&createdAt) {
		err := nr.session.Query(
			"UPDATE notifications SET is_read = true WHERE user_id = ? AND created_at = ?",
			userID, createdAt,
		).WithContext(ctx).Exec()
		if err != nil {
			nr.logger.Println(err)
			return err
		}
	}
	return iter.Close()
}
