// Package testing provides test utilities and database setup for testing the content API
package testing

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/utils"
)

// DefaultTestPassword is the plaintext behind every fixture admin's hash.
const DefaultTestPassword = "TestPass123!"

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestAdmin creates an active admin account with the given role
func (tf *TestFixtures) CreateTestAdmin(role string) (*models.Admin, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(DefaultTestPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	suffix := fmt.Sprintf("%06d", rand.Intn(900000)+100000)
	admin := &models.Admin{
		UUID:         uuid.New(),
		Username:     "admin_" + suffix,
		Email:        fmt.Sprintf("admin.%s@college.edu", suffix),
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsActive:     utils.ToPtr(true),
	}

	if err := tf.DB.DB.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create test admin: %w", err)
	}
	return admin, nil
}

// CreateTestNews creates a news article stamped by the given admin
func (tf *TestFixtures) CreateTestNews(title, category string, published bool, adminID uint) (*models.News, error) {
	article := &models.News{
		Title:    title,
		Summary:  "Summary for " + title,
		Content:  "Body for " + title,
		Category: category,
	}
	article.IsPublished = utils.ToPtr(published)
	article.Stamp(adminID, true)

	if err := tf.DB.DB.Create(article).Error; err != nil {
		return nil, fmt.Errorf("failed to create test news: %w", err)
	}
	return article, nil
}

// CreateTestContact creates a contact-form submission in status new
func (tf *TestFixtures) CreateTestContact(name, subject string) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    name,
		Email:   fmt.Sprintf("%s@example.com", name),
		Subject: subject,
		Message: "Test message body about " + subject,
		Status:  models.ContactStatusNew,
	}
	contact.IsPublished = utils.ToPtr(false)
	contact.Stamp(0, true)

	if err := tf.DB.DB.Create(contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create test contact: %w", err)
	}
	return contact, nil
}

// CreateTestRollNumber creates one roll-number notice
func (tf *TestFixtures) CreateTestRollNumber(title, program string, published bool, adminID uint) (*models.RollNumber, error) {
	entry := &models.RollNumber{
		Title:        title,
		Program:      program,
		Semester:     "3",
		AcademicYear: "2025-26",
	}
	entry.IsPublished = utils.ToPtr(published)
	entry.Stamp(adminID, true)

	if err := tf.DB.DB.Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create test roll number: %w", err)
	}
	return entry, nil
}
