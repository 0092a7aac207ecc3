package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/casetalk/casetalk/internal/factcheck"
	"github.com/casetalk/casetalk/internal/guardrail"
	"github.com/casetalk/casetalk/internal/llm"
	"github.com/casetalk/casetalk/internal/scenario"
)

// apologyMessage is emitted when the avatar-reply collaborator fails.
// The session stays in waiting_for_input so the student can retry.
const apologyMessage = "I'm sorry, I'm having trouble responding right now. Could you give me a moment and try again?"

// AttemptSink receives transcript messages and the completion signal
// from a running session. Sink failures never crash the session.
type AttemptSink interface {
	RecordMessage(ctx context.Context, m Message) error
	Complete(ctx context.Context, s *Session) error
}

// Config carries the collaborators for a Runtime. Provider is required;
// everything else has a working default.
type Config struct {
	Provider llm.Provider
	Policy   *guardrail.Policy
	Resolver BranchResolver
	Delay    DelaySignal
	Checker  factcheck.Checker
	Sink     AttemptSink
	Logger   *zap.Logger
}

// Runtime walks one session through a case graph. It is single-threaded:
// the host must not call Start, HandleUserMessage, or Abandon
// concurrently for the same runtime.
type Runtime struct {
	c        *scenario.Case
	graph    *scenario.Graph
	provider llm.Provider
	policy   *guardrail.Policy
	resolver BranchResolver
	delay    DelaySignal
	checker  factcheck.Checker
	sink     AttemptSink
	logger   *zap.Logger
	session  *Session
}

// NewRuntime creates a runtime with a fresh not_started session.
// The case should be validated before it reaches here; structural
// problems found at runtime degrade to an implicit ending.
func NewRuntime(c *scenario.Case, cfg Config) (*Runtime, error) {
	if cfg.Provider == nil {
		return nil, fmt.Errorf("llm provider is required")
	}
	if cfg.Policy == nil {
		cfg.Policy = guardrail.NewPolicy(guardrail.DefaultTopicConfig())
	}
	if cfg.Resolver == nil {
		cfg.Resolver = FirstEdgeResolver{}
	}
	if cfg.Delay == nil {
		cfg.Delay = NoDelay{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Runtime{
		c:        c,
		graph:    scenario.NewGraph(c),
		provider: cfg.Provider,
		policy:   cfg.Policy,
		resolver: cfg.Resolver,
		delay:    cfg.Delay,
		checker:  cfg.Checker,
		sink:     cfg.Sink,
		logger:   cfg.Logger,
		session:  NewSession(c.ID),
	}, nil
}

// Session returns the runtime's session for inspection. Callers must
// not mutate it.
func (r *Runtime) Session() *Session {
	return r.session
}

// Start begins traversal at the case's start node and processes nodes
// until the session waits for input or completes.
func (r *Runtime) Start(ctx context.Context) error {
	if r.session.Status != StatusNotStarted {
		return fmt.Errorf("session already started (status %s)", r.session.Status)
	}
	r.session.Status = StatusRunning
	return r.advance(ctx, r.c.StartNodeID)
}

// HandleUserMessage processes a student message while the session is
// waiting for input. Blocked messages get a substitute assistant
// response and leave the session on the same node; allowed messages get
// an avatar reply and resume traversal.
func (r *Runtime) HandleUserMessage(ctx context.Context, text string) error {
	if r.session.Status != StatusWaitingForInput {
		return fmt.Errorf("session is %s, not waiting for input", r.session.Status)
	}

	node, err := r.graph.Node(r.session.CurrentNodeID)
	if err != nil {
		return fmt.Errorf("current node: %w", err)
	}

	r.record(ctx, r.session.append(RoleUser, text, node.ID))

	in := r.policy.ScreenInbound(text, r.c.Guardrails)
	if in.Action != guardrail.InboundAllow {
		// The student must still answer the original question: substitute
		// the policy response and stay on this node.
		r.logger.Info("inbound message blocked",
			zap.String("action", string(in.Action)),
			zap.String("topic", in.MatchedTopic))
		r.record(ctx, r.session.append(RoleAssistant, in.Response, ""))
		return nil
	}

	r.session.Status = StatusRunning

	reply, err := r.generateReply(ctx, node)
	if err != nil {
		// Collaborator failure: apologize in-transcript and let the
		// student retry.
		r.logger.Warn("avatar reply failed", zap.String("nodeId", node.ID), zap.Error(err))
		r.record(ctx, r.session.append(RoleAssistant, apologyMessage, node.ID))
		r.session.Status = StatusWaitingForInput
		return nil
	}

	r.emit(ctx, reply, node.ID)

	if r.policy.RequireFactCheck(r.c.Guardrails) && r.checker != nil {
		knowledge := r.c.Description + "\n\n" + node.Content
		res, err := r.checker.Check(ctx, reply, knowledge)
		if err != nil {
			r.logger.Warn("fact check failed", zap.String("nodeId", node.ID), zap.Error(err))
		} else {
			r.session.FactCheckResults[node.ID] = res.Passed
		}
	}

	return r.advance(ctx, r.graph.NextNode(node.ID))
}

// Abandon ends the session before an ending node. The attempt is still
// finalized, marked incomplete, so progress is not discarded.
func (r *Runtime) Abandon(ctx context.Context) error {
	if r.session.Status == StatusCompleted {
		return nil
	}
	r.session.Abandoned = true
	return r.complete(ctx)
}

// advance processes nodes starting at nodeID until the session waits
// for input or completes. An empty nodeID means a dangling transition:
// the session degrades to an implicit ending rather than crashing.
func (r *Runtime) advance(ctx context.Context, nodeID string) error {
	for {
		if nodeID == "" {
			r.logger.Warn("dangling transition, treating as implicit ending",
				zap.String("caseId", r.c.ID),
				zap.String("lastNodeId", r.session.CurrentNodeID))
			return r.complete(ctx)
		}

		node, err := r.graph.Node(nodeID)
		if err != nil {
			r.logger.Warn("transition to unknown node, treating as implicit ending",
				zap.String("caseId", r.c.ID),
				zap.String("nodeId", nodeID))
			return r.complete(ctx)
		}
		r.session.visit(node.ID)

		switch node.Type {
		case scenario.NodeOpening, scenario.NodeDialogue, scenario.NodeFeedback:
			r.emit(ctx, node.Content, node.ID)
			if err := r.delay.Wait(ctx); err != nil {
				return err
			}
			nodeID = r.graph.NextNode(node.ID)

		case scenario.NodeCheckpoint:
			r.emit(ctx, fmt.Sprintf("[Checkpoint: %s] %s", node.Label, node.Content), node.ID)
			r.session.CheckpointsReached = append(r.session.CheckpointsReached, node.ID)
			if err := r.delay.Wait(ctx); err != nil {
				return err
			}
			nodeID = r.graph.NextNode(node.ID)

		case scenario.NodeQuestion:
			r.emit(ctx, node.Content, node.ID)
			r.session.Status = StatusWaitingForInput
			return nil

		case scenario.NodeListen:
			// No assistant message; just wait for the student.
			r.session.Status = StatusWaitingForInput
			return nil

		case scenario.NodeBranch:
			edges := r.graph.Outgoing(node.ID)
			if len(edges) == 0 {
				nodeID = ""
				continue
			}
			target, err := r.resolver.Resolve(ctx, node, edges, r.session.Messages)
			if err != nil {
				// Resolvers return a first-edge fallback alongside the error.
				r.logger.Warn("branch resolution failed, using fallback",
					zap.String("nodeId", node.ID), zap.Error(err))
			}
			nodeID = target

		case scenario.NodeEnding:
			r.emit(ctx, node.Content, node.ID)
			r.session.CheckpointsReached = append(r.session.CheckpointsReached, node.ID)
			return r.complete(ctx)

		default:
			r.logger.Warn("unknown node type, treating as implicit ending",
				zap.String("nodeId", node.ID),
				zap.String("type", string(node.Type)))
			return r.complete(ctx)
		}
	}
}

// generateReply asks the LLM collaborator for an avatar response to the
// conversation so far.
func (r *Runtime) generateReply(ctx context.Context, node *scenario.Node) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeAvatarReply)

	msgs := make([]llm.Message, 0, len(r.session.Messages))
	for _, m := range r.session.Messages {
		role := llm.RoleUser
		if m.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}

	resp, err := r.provider.Generate(ctx, llm.Request{
		System:    buildAvatarSystemPrompt(r.c, node),
		Messages:  msgs,
		MaxTokens: 1024,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// emit screens avatar text and appends it to the transcript.
func (r *Runtime) emit(ctx context.Context, text, nodeID string) {
	out := r.policy.ScreenOutbound(text, r.c.Guardrails)
	if out.Action == guardrail.OutboundTruncate {
		r.logger.Info("outbound message truncated", zap.String("nodeId", nodeID))
	}
	r.record(ctx, r.session.append(RoleAssistant, out.Text, nodeID))
}

// record forwards a message to the attempt sink.
func (r *Runtime) record(ctx context.Context, m Message) {
	if r.sink == nil {
		return
	}
	if err := r.sink.RecordMessage(ctx, m); err != nil {
		r.logger.Warn("record message failed", zap.Error(err))
	}
}

// complete seals the session exactly once, no matter how many
// termination signals arrive.
func (r *Runtime) complete(ctx context.Context) error {
	if r.session.finalized {
		return nil
	}
	r.session.finalized = true
	r.session.Status = StatusCompleted

	if r.sink == nil {
		return nil
	}
	if err := r.sink.Complete(ctx, r.session); err != nil {
		return fmt.Errorf("finalize attempt: %w", err)
	}
	return nil
}
