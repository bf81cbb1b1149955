// 手动为指定用户生成学习计划
//
// 用于数据导入后批量补建计划，与 POST /api/study-plans/generate 走同一套逻辑。
//
// 用法: go run scripts/generate_plan.go -user 1 -date 2026-11-23 [-name "Autumn plan"] [-dry-run]

package main

import (
	"context"
	"flag"
	"ielts_tracker_backend/internal/config"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/internal/util"
	"ielts_tracker_backend/pkg/database"
	"ielts_tracker_backend/pkg/logger"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	userID := flag.Uint("user", 0, "用户ID")
	testDate := flag.String("date", "", "考试日期 YYYY-MM-DD")
	planName := flag.String("name", "", "计划名称，留空使用缺省名称")
	dryRun := flag.Bool("dry-run", false, "只打印任务，不写库")
	flag.Parse()

	if *userID == 0 || *testDate == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}
	if err := cfg.Normalize(); err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	logger.InitLogger(&cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	sectionRepo := repository.NewSectionRepository(db)
	planService := service.NewStudyPlanService(
		db,
		repository.NewStudyPlanRepository(db),
		repository.NewPracticeTestRepository(db, nil),
		repository.NewWeakAreaRepository(db),
		sectionRepo,
		repository.NewResourceRepository(db),
		&cfg,
	)

	req := service.GeneratePlanRequest{TestDate: *testDate, PlanName: *planName}
	ctx := context.Background()

	if *dryRun {
		schedule, err := planService.Preview(ctx, *userID, req)
		if err != nil {
			log.Fatalf("预览失败: %v", err)
		}
		log.Printf("%s: %s ~ %s, %d 项任务", schedule.Plan.Name,
			schedule.Plan.StartDate.Format(util.DateFormat), schedule.Plan.EndDate.Format(util.DateFormat), len(schedule.Items))
		for _, item := range schedule.Items {
			log.Printf("  %s  %3d 分钟  %s", item.ScheduledDate.Format(util.DateFormat), item.DurationMinutes, item.Title)
		}
		return
	}

	plan, err := planService.Generate(ctx, *userID, req)
	if err != nil {
		log.Fatalf("生成失败: %v", err)
	}
	log.Printf("完成！计划 #%d %s，共 %d 项任务", plan.ID, plan.Name, len(plan.Items))
}
