package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/stemsi/school-helper-backend/internal/config"
	"github.com/stemsi/school-helper-backend/internal/database"
	"github.com/stemsi/school-helper-backend/internal/logger"
	"github.com/stemsi/school-helper-backend/internal/model"
	"github.com/stemsi/school-helper-backend/internal/repository"
	"github.com/stemsi/school-helper-backend/internal/service"
)

func main() {
	var count int
	var className, section, examName string
	var year int
	flag.IntVar(&count, "count", 30, "Number of students to seed")
	flag.StringVar(&className, "class", "8", "Class name for seeded students")
	flag.StringVar(&section, "section", "A", "Section for seeded students")
	flag.StringVar(&examName, "exam", "Half-Yearly", "Exam name for marksheets and admit cards")
	flag.IntVar(&year, "year", time.Now().Year(), "Academic year of the exam")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	store := database.NewMongoStore(ctx, cfg, log)
	if !store.Configured() {
		log.Fatal().Msg("MongoDB is not configured, set DATABASE_URL and DATABASE_NAME")
	}
	defer store.Close(context.Background())

	studentService := service.NewStudentService(repository.NewStudentRepository(store))
	marksheetService := service.NewMarksheetService(repository.NewMarksheetRepository(store), log)
	admitCardService := service.NewAdmitCardService(repository.NewAdmitCardRepository(store))
	attendanceService := service.NewAttendanceService(repository.NewAttendanceRepository(store))

	names := []string{
		"Aarav Sharma", "Diya Patel", "Vivaan Gupta", "Ananya Iyer", "Aditya Singh",
		"Ishita Reddy", "Arjun Nair", "Kavya Menon", "Reyansh Das", "Saanvi Joshi",
		"Krishna Rao", "Myra Kapoor", "Kabir Mehta", "Anika Bose", "Vihaan Verma",
		"Aadhya Pillai", "Ayaan Khan", "Navya Kulkarni", "Atharv Mishra", "Pari Chatterjee",
		"Shaurya Jain", "Riya Banerjee", "Dhruv Saxena", "Tara Desai", "Rudra Pandey",
		"Meera Ghosh", "Arnav Thakur", "Sara Fernandes", "Ishaan Bhat", "Zoya Qureshi",
	}
	subjects := []string{"Mathematics", "Science", "English", "Social Studies", "Hindi"}
	statuses := []model.AttendanceStatus{model.AttendancePresent, model.AttendancePresent, model.AttendanceLate, model.AttendanceAbsent}

	examDate := time.Date(year, time.September, 15, 0, 0, 0, 0, time.UTC)
	issuedOn := examDate.AddDate(0, 0, -14).Format("2006-01-02")
	center := "Main Hall"

	fmt.Printf("=== Seeding %d students in class %s-%s ===\n", count, className, section)

	successCount := 0
	for i := 0; i < count; i++ {
		rollNo := fmt.Sprintf("%s%s-%03d", className, section, i+1)
		dob := time.Date(year-13, time.Month(i%12+1), i%28+1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		sec := section

		studentID, err := studentService.Create(ctx, &model.CreateStudentRequest{
			FullName:  names[i%len(names)],
			RollNo:    rollNo,
			ClassName: className,
			Section:   &sec,
			DOB:       &dob,
		})
		if errors.Is(err, service.ErrDuplicateRollNo) {
			fmt.Printf("Skipping roll %s: already registered\n", rollNo)
			continue
		}
		if err != nil {
			fmt.Printf("Error creating student %s (roll %s): %v\n", names[i%len(names)], rollNo, err)
			continue
		}

		marks := make([]model.SubjectMark, 0, len(subjects))
		for j, name := range subjects {
			m := float64(40 + (i*7+j*13)%61)
			marks = append(marks, model.SubjectMark{Name: name, Marks: &m, MaxMarks: 100})
		}
		if _, err := marksheetService.Create(ctx, &model.CreateMarksheetRequest{
			StudentID: studentID,
			ExamName:  examName,
			ClassName: className,
			Year:      year,
			Subjects:  marks,
		}); err != nil {
			fmt.Printf("Error creating marksheet for roll %s: %v\n", rollNo, err)
		}

		date := examDate.Format("2006-01-02")
		if _, err := admitCardService.Create(ctx, &model.CreateAdmitCardRequest{
			StudentID: studentID,
			RollNo:    rollNo,
			ClassName: className,
			ExamName:  examName,
			ExamDate:  &date,
			Center:    &center,
			IssuedOn:  &issuedOn,
		}); err != nil {
			fmt.Printf("Error creating admit card for roll %s: %v\n", rollNo, err)
		}

		for d := 0; d < 5; d++ {
			day := examDate.AddDate(0, 0, -7+d).Format("2006-01-02")
			if _, err := attendanceService.Mark(ctx, &model.CreateAttendanceRequest{
				StudentID: studentID,
				Date:      day,
				Status:    statuses[(i+d)%len(statuses)],
			}); err != nil {
				fmt.Printf("Error marking attendance for roll %s on %s: %v\n", rollNo, day, err)
			}
		}

		successCount++
		if successCount%10 == 0 {
			fmt.Printf("Seeded %d students...\n", successCount)
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d students.\n", successCount, count)
}
