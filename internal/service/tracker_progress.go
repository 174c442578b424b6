package service

import (
	"context"
	"math"

	"github.com/noah-isme/alhafizh-api/internal/catalog"
	"github.com/noah-isme/alhafizh-api/internal/dto"
	"github.com/noah-isme/alhafizh-api/internal/models"
)

var dashboardQuotes = []dto.Quote{
	{
		Arabic:      "اقْرَءُوا الْقُرْآنَ فَإِنَّهُ يَأْتِي يَوْمَ الْقِيَامَةِ شَفِيعًا لِأَصْحَابِهِ",
		Translation: "Bacalah Al-Qur'an, karena ia akan datang pada hari kiamat sebagai pemberi syafa'at bagi para pembacanya.",
		Source:      "HR. Muslim",
	},
	{
		Arabic:      "خَيْرُكُمْ مَنْ تَعَلَّمَ الْقُرْآنَ وَعَلَّمَهُ",
		Translation: "Sebaik-baik kalian adalah orang yang belajar Al-Qur'an dan mengajarkannya.",
		Source:      "HR. Bukhari",
	},
	{
		Arabic:      "الْمَاهِرُ بِالْقُرْآنِ مَعَ السَّفَرَةِ الْكِرَامِ الْبَرَرَةِ",
		Translation: "Orang yang mahir membaca Al-Qur'an, kelak akan bersama para malaikat yang mulia lagi taat.",
		Source:      "HR. Bukhari & Muslim",
	},
	{
		Arabic:      "وَلَقَدْ يَسَّرْنَا الْقُرْآنَ لِلذِّكْرِ فَهَلْ مِنْ مُدَّكِرٍ",
		Translation: "Dan sungguh, telah Kami mudahkan Al-Qur'an untuk pelajaran, maka adakah orang yang mau mengambil pelajaran?",
		Source:      "QS. Al-Qamar: 17",
	},
}

func (s *trackerService) Dashboard(_ context.Context) dto.DashboardResponse {
	s.mu.Lock()
	mastered, average := dashboardStats(s.classes, s.students)
	response := dto.DashboardResponse{
		TotalStudents:   len(s.students),
		TotalClasses:    len(s.classes),
		TotalMastered:   mastered,
		AverageProgress: average,
	}
	s.mu.Unlock()

	response.Quote = dashboardQuotes[s.now().YearDay()%len(dashboardQuotes)]
	return response
}

func (s *trackerService) ClassProgress(_ context.Context, classID string) (dto.ClassProgressResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	class, ok := s.findClassLocked(classID)
	if !ok {
		return dto.ClassProgressResponse{}, ErrClassNotFound
	}

	members := make([]models.Student, 0)
	for _, student := range s.students {
		if student.ClassID == class.ID {
			members = append(members, student)
		}
	}

	return dto.ClassProgressResponse{
		ClassID:   class.ID,
		ClassName: class.Name,
		Students:  len(members),
		Chapters:  chapterCompletion(class, members),
	}, nil
}

func (s *trackerService) StudentProgress(_ context.Context, studentID string) (dto.StudentProgressResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.studentIndexLocked(studentID)
	if idx < 0 {
		return dto.StudentProgressResponse{}, ErrStudentNotFound
	}
	student := s.students[idx].Clone()

	response := dto.StudentProgressResponse{
		StudentID:      student.ID,
		StudentName:    student.Name,
		ClassID:        student.ClassID,
		MemorizedCount: student.MemorizedCount(),
		Assessments:    dto.NewStudentResponse(student).Assessments,
	}

	if class, ok := s.findClassLocked(student.ClassID); ok {
		response.ClassName = class.Name
		response.TargetChapters = len(catalog.TargetChapters(class.TargetRange.From, class.TargetRange.To))
	}
	if response.TargetChapters > 0 {
		response.ProgressPercent = progressPercent(response.MemorizedCount, response.TargetChapters)
	}

	return response, nil
}

// dashboardStats returns the total mastered chapters over every student and the
// rounded average progress over students whose class has a non-empty target.
func dashboardStats(classes []models.Class, students []models.Student) (int, int) {
	targets := make(map[string]int, len(classes))
	for _, class := range classes {
		targets[class.ID] = len(catalog.TargetChapters(class.TargetRange.From, class.TargetRange.To))
	}

	mastered := 0
	eligible := 0
	sum := 0.0
	for _, student := range students {
		count := student.MemorizedCount()
		mastered += count

		target := targets[student.ClassID]
		if target == 0 {
			continue
		}
		eligible++
		sum += progressPercent(count, target)
	}

	if eligible == 0 {
		return mastered, 0
	}
	return mastered, int(math.Floor(sum/float64(eligible) + 0.5))
}

// chapterCompletion reports, last chapter first, how many members mastered each
// target chapter.
func chapterCompletion(class models.Class, members []models.Student) []dto.ChapterProgress {
	chapters := catalog.TargetChapters(class.TargetRange.From, class.TargetRange.To)
	out := make([]dto.ChapterProgress, 0, len(chapters))
	for _, chapter := range chapters {
		completed := 0
		for _, student := range members {
			if student.HasCompleted(chapter.LatinName) {
				completed++
			}
		}

		percentage := 0.0
		if len(members) > 0 {
			percentage = 100 * float64(completed) / float64(len(members))
		}

		out = append(out, dto.ChapterProgress{
			Number:     chapter.Number,
			Name:       chapter.LatinName,
			Completed:  completed,
			Total:      len(members),
			Percentage: percentage,
		})
	}
	return out
}

func progressPercent(memorized, target int) float64 {
	return 100 * float64(memorized) / float64(target)
}
